// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which means you need a C compiler installed and
// cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed.
//
// The pattern is always:
//  1. sql.Open(driverName, dataSourceName) → creates a pool
//  2. db.QueryContext / db.ExecContext     → runs queries
//  3. rows.Scan(&field1, &field2)          → reads results into Go variables
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sakif/confession-wall/internal/model"
	"github.com/sakif/confession-wall/internal/repository"
)

var _ repository.Store = (*DB)(nil)

// DB wraps a sql.DB connection pool and implements repository.Store.
type DB struct {
	conn  *sql.DB
	clock *repository.Clock
}

// New opens the SQLite database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/confessionwall.db" → file-based database (persistent)
//   - ":memory:"               → in-memory database (tests)
//
// ONE CONNECTION:
// The pool is capped at a single open connection. SQLite only allows one
// writer at a time anyway, and every connection to ":memory:" would be a
// separate, empty database. PRAGMAs are per connection too, so with one
// connection foreign_keys=ON holds for every statement.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite. advice.user_id and
	// confession.user_id must reference a real user.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn, clock: repository.NewClock()}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks that the database is still reachable. Used by the health check.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS makes it safe to
// run on every start.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// AUTOINCREMENT guarantees ids are never reused, so ordering by id is
	// insertion order.
	for _, table := range []string{"advice", "confession"} {
		_, err = db.conn.Exec(fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %[1]s (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				content    TEXT NOT NULL CHECK (content <> ''),
				likes      INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
				user_id    INTEGER NOT NULL REFERENCES users(id),
				created_at DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_%[1]s_user_id ON %[1]s(user_id);
		`, table))
		if err != nil {
			return fmt.Errorf("creating %s table: %w", table, err)
		}
	}

	// Seed the placeholder owner for posts submitted without a userId.
	// INSERT OR IGNORE keeps this idempotent.
	_, err = db.conn.Exec(
		`INSERT OR IGNORE INTO users (id, username) VALUES (1, ?)`,
		model.DefaultUsername,
	)
	if err != nil {
		return fmt.Errorf("seeding default user: %w", err)
	}

	return nil
}
