package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sakif/confession-wall/internal/apperror"
	"github.com/sakif/confession-wall/internal/model"
)

func (db *DB) CreateAdvice(ctx context.Context, advice *model.Advice) error {
	advice.ID = 0
	advice.Likes = 0
	err := db.clock.Stamp(func(now time.Time) error {
		advice.CreatedAt = now
		return db.gorm.WithContext(ctx).Create(advice).Error
	})
	if err != nil {
		return apperror.Storage("postgres: creating advice", err)
	}
	return nil
}

func (db *DB) GetAdvice(ctx context.Context, id int64) (*model.Advice, error) {
	var a model.Advice
	err := db.gorm.WithContext(ctx).First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("advice", id)
		}
		return nil, apperror.Storage("postgres: getting advice", err)
	}
	return &a, nil
}

func (db *DB) ListAdvice(ctx context.Context) ([]model.Advice, error) {
	list := make([]model.Advice, 0)
	if err := db.gorm.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, apperror.Storage("postgres: listing advice", err)
	}
	return list, nil
}

// IncrementConfessionLikes runs a single UPDATE ... SET likes = likes + 1.
// UpdateColumn skips hooks and the updated_at bookkeeping, so the statement
// touches nothing but the counter.
func (db *DB) IncrementConfessionLikes(ctx context.Context, id int64) error {
	result := db.gorm.WithContext(ctx).
		Model(&model.Confession{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return apperror.Storage("postgres: incrementing confession likes", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("confession", id)
	}
	return nil
}

func (db *DB) CreateConfession(ctx context.Context, c *model.Confession) error {
	c.ID = 0
	c.Likes = 0
	err := db.clock.Stamp(func(now time.Time) error {
		c.CreatedAt = now
		return db.gorm.WithContext(ctx).Create(c).Error
	})
	if err != nil {
		return apperror.Storage("postgres: creating confession", err)
	}
	return nil
}

func (db *DB) GetConfession(ctx context.Context, id int64) (*model.Confession, error) {
	var c model.Confession
	err := db.gorm.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("confession", id)
		}
		return nil, apperror.Storage("postgres: getting confession", err)
	}
	return &c, nil
}

func (db *DB) ListConfessions(ctx context.Context) ([]model.Confession, error) {
	list := make([]model.Confession, 0)
	if err := db.gorm.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, apperror.Storage("postgres: listing confessions", err)
	}
	return list, nil
}
