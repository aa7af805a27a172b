package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sakif/confession-wall/internal/apperror"
	"github.com/sakif/confession-wall/internal/model"
)

// CreateAdvice inserts a new advice row.
//
// The id comes from SQLite (AUTOINCREMENT) and is read back with
// LastInsertId. likes always starts at 0, whatever the caller set.
// created_at comes from db.clock, stamped and inserted under one lock so a
// higher id never carries an earlier timestamp.
//
// PARAMETERIZED QUERIES (the ? placeholders):
// NEVER build SQL strings with fmt.Sprintf or string concatenation!
// The driver escapes the values, which rules out SQL injection.
func (db *DB) CreateAdvice(ctx context.Context, advice *model.Advice) error {
	advice.Likes = 0

	var result sql.Result
	err := db.clock.Stamp(func(now time.Time) error {
		var err error
		result, err = db.conn.ExecContext(ctx,
			`INSERT INTO advice (content, likes, user_id, created_at)
			 VALUES (?, 0, ?, ?)`,
			advice.Content,
			advice.UserID,
			now,
		)
		if err == nil {
			advice.CreatedAt = now
		}
		return err
	})
	if err != nil {
		return apperror.Storage("sqlite: creating advice", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperror.Storage("sqlite: reading advice id", err)
	}
	advice.ID = id

	return nil
}

// GetAdvice retrieves a single advice row by its ID.
// sql.ErrNoRows is translated to apperror.ErrNotFound so the handler can answer 404.
func (db *DB) GetAdvice(ctx context.Context, id int64) (*model.Advice, error) {
	var a model.Advice

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, content, likes, user_id, created_at
		 FROM advice
		 WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.Content, &a.Likes, &a.UserID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("advice", id)
		}
		return nil, apperror.Storage("sqlite: getting advice", err)
	}

	return &a, nil
}

// ListAdvice returns all advice, oldest first.
//
// defer rows.Close() — sql.Rows holds a connection from the pool; with a
// pool of one, forgetting to close it would hang every later query.
func (db *DB) ListAdvice(ctx context.Context) ([]model.Advice, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, content, likes, user_id, created_at
		 FROM advice
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, apperror.Storage("sqlite: listing advice", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
	list := make([]model.Advice, 0)

	for rows.Next() {
		var a model.Advice
		if err := rows.Scan(&a.ID, &a.Content, &a.Likes, &a.UserID, &a.CreatedAt); err != nil {
			return nil, apperror.Storage("sqlite: scanning advice row", err)
		}
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("sqlite: iterating advice", err)
	}

	return list, nil
}
