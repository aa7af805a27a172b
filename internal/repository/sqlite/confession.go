package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sakif/confession-wall/internal/apperror"
	"github.com/sakif/confession-wall/internal/model"
)

// IncrementConfessionLikes adds one like to a confession.
//
// ATOMICITY:
// "likes = likes + 1" is evaluated by SQLite inside a single statement, so
// concurrent callers can never lose an update the way a
// read-modify-write in Go would.
//
// RowsAffected() == 0 means the WHERE clause matched nothing → not found.
func (db *DB) IncrementConfessionLikes(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE confession SET likes = likes + 1 WHERE id = ?`,
		id,
	)
	if err != nil {
		return apperror.Storage("sqlite: incrementing confession likes", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage("sqlite: checking rows affected", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("confession", id)
	}

	return nil
}

func (db *DB) CreateConfession(ctx context.Context, c *model.Confession) error {
	c.Likes = 0

	var result sql.Result
	err := db.clock.Stamp(func(now time.Time) error {
		var err error
		result, err = db.conn.ExecContext(ctx,
			`INSERT INTO confession (content, likes, user_id, created_at)
			 VALUES (?, 0, ?, ?)`,
			c.Content,
			c.UserID,
			now,
		)
		if err == nil {
			c.CreatedAt = now
		}
		return err
	})
	if err != nil {
		return apperror.Storage("sqlite: creating confession", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperror.Storage("sqlite: reading confession id", err)
	}
	c.ID = id

	return nil
}

func (db *DB) GetConfession(ctx context.Context, id int64) (*model.Confession, error) {
	var c model.Confession

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, content, likes, user_id, created_at
		 FROM confession
		 WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Content, &c.Likes, &c.UserID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("confession", id)
		}
		return nil, apperror.Storage("sqlite: getting confession", err)
	}

	return &c, nil
}

func (db *DB) ListConfessions(ctx context.Context) ([]model.Confession, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, content, likes, user_id, created_at
		 FROM confession
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, apperror.Storage("sqlite: listing confessions", err)
	}
	defer rows.Close()

	list := make([]model.Confession, 0)
	for rows.Next() {
		var c model.Confession
		if err := rows.Scan(&c.ID, &c.Content, &c.Likes, &c.UserID, &c.CreatedAt); err != nil {
			return nil, apperror.Storage("sqlite: scanning confession row", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("sqlite: iterating confessions", err)
	}

	return list, nil
}
