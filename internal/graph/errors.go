package graph

import (
	"errors"
	"fmt"

	"github.com/kelechio/movieql/internal/repo"
)

var (
	// ErrInvalidCredentials covers bad login input and duplicate signups alike,
	// so the API never confirms whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrMovieNotFound is returned by movie mutations against a missing id.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrUserNotFound is returned by user mutations against a missing id.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword is returned by changePassword when the old password
	// does not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// mapUserError converts repo errors from user writes into API-facing errors.
func mapUserError(err error) error {
	switch {
	case errors.Is(err, repo.ErrDuplicate):
		return fmt.Errorf("%w: email or username already in use", ErrInvalidCredentials)
	case errors.Is(err, repo.ErrNotFound):
		return ErrUserNotFound
	default:
		return err
	}
}
