package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/confession-wall/internal/model"
	"github.com/sakif/confession-wall/internal/repository"
)

// AdviceService handles business logic for advice posts.
type AdviceService struct {
	repo   repository.AdviceRepository
	opts   Options
	logger *slog.Logger
}

func NewAdviceService(repo repository.AdviceRepository, opts Options, logger *slog.Logger) *AdviceService {
	return &AdviceService{
		repo:   repo,
		opts:   opts,
		logger: logger,
	}
}

// Create validates and saves a new advice post.
//
// Order matters: content is checked before anything else, and the
// repository is never called for invalid input. A zero userID is replaced
// by DefaultUserID.
func (s *AdviceService) Create(ctx context.Context, content string, userID int64) (*model.Advice, error) {
	if err := validateContent(content, s.opts.maxContentLength()); err != nil {
		return nil, err
	}

	advice := &model.Advice{
		Content: content,
		UserID:  resolveUserID(userID),
	}

	if err := s.repo.CreateAdvice(ctx, advice); err != nil {
		s.logger.Error("failed to create advice",
			slog.Int64("userId", advice.UserID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating advice: %w", err)
	}

	s.logger.Info("advice created",
		slog.Int64("id", advice.ID),
		slog.Int64("userId", advice.UserID),
	)

	return advice, nil
}

// List returns every advice post, oldest first.
func (s *AdviceService) List(ctx context.Context) ([]model.Advice, error) {
	list, err := s.repo.ListAdvice(ctx)
	if err != nil {
		s.logger.Error("failed to list advice", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing advice: %w", err)
	}
	return list, nil
}

// Get returns one advice post. Returns apperror.ErrNotFound if it doesn't exist.
func (s *AdviceService) Get(ctx context.Context, id int64) (*model.Advice, error) {
	return s.repo.GetAdvice(ctx, id)
}
