package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/confession-wall/internal/apperror"
	"github.com/sakif/confession-wall/internal/model"
	"github.com/sakif/confession-wall/internal/repository"
)

// ConfessionService handles business logic for confessions and their likes.
type ConfessionService struct {
	repo   repository.ConfessionRepository
	opts   Options
	logger *slog.Logger
}

func NewConfessionService(repo repository.ConfessionRepository, opts Options, logger *slog.Logger) *ConfessionService {
	return &ConfessionService{
		repo:   repo,
		opts:   opts,
		logger: logger,
	}
}

// AddLike increments the like counter of confession id by one.
//
// A missing confession is tolerated unless Options.StrictLikes is set:
// clients have always received a success response in that case.
func (s *ConfessionService) AddLike(ctx context.Context, id int64) error {
	err := s.repo.IncrementConfessionLikes(ctx, id)
	switch {
	case err == nil:
		s.logger.Debug("confession liked", slog.Int64("id", id))
		return nil
	case errors.Is(err, apperror.ErrNotFound):
		if s.opts.StrictLikes {
			return err
		}
		s.logger.Warn("like for unknown confession ignored", slog.Int64("id", id))
		return nil
	default:
		s.logger.Error("failed to like confession",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("liking confession %d: %w", id, err)
	}
}

func (s *ConfessionService) Create(ctx context.Context, content string, userID int64) (*model.Confession, error) {
	if err := validateContent(content, s.opts.maxContentLength()); err != nil {
		return nil, err
	}

	c := &model.Confession{
		Content: content,
		UserID:  resolveUserID(userID),
	}

	if err := s.repo.CreateConfession(ctx, c); err != nil {
		s.logger.Error("failed to create confession",
			slog.Int64("userId", c.UserID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating confession: %w", err)
	}

	s.logger.Info("confession created", slog.Int64("id", c.ID))
	return c, nil
}

func (s *ConfessionService) List(ctx context.Context) ([]model.Confession, error) {
	list, err := s.repo.ListConfessions(ctx)
	if err != nil {
		s.logger.Error("failed to list confessions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing confessions: %w", err)
	}
	return list, nil
}

func (s *ConfessionService) Get(ctx context.Context, id int64) (*model.Confession, error) {
	return s.repo.GetConfession(ctx, id)
}
