package service

import (
	"errors"
	"fmt"

	"github.com/localchefbazaar/backend/internal/repo"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
	ErrUpstream   = errors.New("upstream")   // 500

	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrRequestNotUpdated = fmt.Errorf("%w: pending request", ErrNotFound)
)

// classify maps repository sentinels onto service ones, keeping the cause.
func classify(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, repo.ErrConflict):
		return fmt.Errorf("%w: %s", ErrConflict, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func validation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
