// Package repository declares the data-access contracts.
//
// Implementations live in subpackages (sqlite, postgres). They are the only
// code allowed to talk to the data store: they do not validate input and do
// not retry. Every store failure is returned as an apperror.ErrStorage.
package repository

import (
	"context"

	"github.com/sakif/confession-wall/internal/model"
)

type AdviceRepository interface {
	// ListAdvice returns every advice row, oldest first. Never nil.
	ListAdvice(ctx context.Context) ([]model.Advice, error)
	// CreateAdvice inserts one row with zero likes and fills in ID and CreatedAt.
	CreateAdvice(ctx context.Context, advice *model.Advice) error
	GetAdvice(ctx context.Context, id int64) (*model.Advice, error)
}

type ConfessionRepository interface {
	// IncrementConfessionLikes atomically adds one like.
	// Returns apperror.ErrNotFound when no row has the given id.
	IncrementConfessionLikes(ctx context.Context, id int64) error
	CreateConfession(ctx context.Context, confession *model.Confession) error
	ListConfessions(ctx context.Context) ([]model.Confession, error)
	GetConfession(ctx context.Context, id int64) (*model.Confession, error)
}

// Store is everything the server needs from a backend.
type Store interface {
	AdviceRepository
	ConfessionRepository
	Ping(ctx context.Context) error
	Close() error
}
