// Package service contains the business rules of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, applies defaults, logs outcomes
//	Repository (Data layer)  → reads/writes to the database
//
// Services accept plain values (never *http.Request) and return apperror
// values; the handler decides what status code each one becomes.
package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/confession-wall/internal/apperror"
)

const (
	// DefaultUserID owns every post submitted without a userId.
	// The migrations seed a user row with this id.
	DefaultUserID int64 = 1

	DefaultMaxContentLength = 500
)

// Options tunes the validation and likes policy.
type Options struct {
	// MaxContentLength caps post content, in characters. 0 means DefaultMaxContentLength.
	MaxContentLength int
	// StrictLikes reports a like on a missing confession as not found.
	// When false, the like is logged and acknowledged as if it succeeded.
	StrictLikes bool
}

func (o Options) maxContentLength() int {
	if o.MaxContentLength <= 0 {
		return DefaultMaxContentLength
	}
	return o.MaxContentLength
}

// validate is safe for concurrent use and caches struct metadata, so one
// instance is shared by the whole package.
var validate = validator.New()

// validateContent applies the rules shared by advice and confessions.
// Emptiness is checked on the trimmed text; the length bound applies to the
// text as submitted, which is also what gets stored.
func validateContent(content string, maxLength int) error {
	if strings.TrimSpace(content) == "" {
		return apperror.ValidationFailed("content", "Content is required")
	}
	// "max" on a string counts runes, not bytes.
	if err := validate.Var(content, fmt.Sprintf("max=%d", maxLength)); err != nil {
		return apperror.ValidationFailed("content",
			fmt.Sprintf("Content must be %d characters or less", maxLength))
	}
	return nil
}

// resolveUserID applies the placeholder-owner policy.
func resolveUserID(userID int64) int64 {
	if userID == 0 {
		return DefaultUserID
	}
	return userID
}
