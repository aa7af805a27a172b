package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("confession", 7),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("content", "Content is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Conflict wraps ErrConflict",
			err:       Conflict("advice", 3),
			target:    ErrConflict,
			wantMatch: true,
		},
		{
			name:      "Storage wraps ErrStorage",
			err:       Storage("sqlite: listing advice", errors.New("disk I/O error")),
			target:    ErrStorage,
			wantMatch: true,
		},
		{
			name:      "Storage keeps the cause reachable",
			err:       Storage("sqlite: creating advice", context.Canceled),
			target:    context.Canceled,
			wantMatch: true,
		},
		{
			name:      "wrapped Storage still matches",
			err:       fmt.Errorf("listing advice: %w", Storage("sqlite: listing advice", errors.New("boom"))),
			target:    ErrStorage,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrValidation",
			err:       NotFound("confession", 7),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "ValidationFailed does NOT match ErrStorage",
			err:       ValidationFailed("content", "too long"),
			target:    ErrStorage,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "NotFound message includes resource and id",
			err:         NotFound("confession", 42),
			wantMessage: "confession not found with id 42",
		},
		{
			name:        "ValidationFailed uses custom message",
			err:         ValidationFailed("content", "Content is required"),
			wantMessage: "Content is required",
		},
		{
			name:        "Storage message includes the cause",
			err:         Storage("sqlite: listing advice", errors.New("database is locked")),
			wantMessage: "sqlite: listing advice: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestAsExtractsMessage(t *testing.T) {
	err := fmt.Errorf("creating advice: %w", ValidationFailed("content", "Content is required"))

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As() = false, want true")
	}
	if appErr.Message != "Content is required" {
		t.Errorf("Message = %q, want %q", appErr.Message, "Content is required")
	}
	if appErr.Field != "content" {
		t.Errorf("Field = %q, want %q", appErr.Field, "content")
	}
}
