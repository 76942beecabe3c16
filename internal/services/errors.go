package services

import (
	"errors"

	"chirp/internal/repositories"
)

// Failure taxonomy surfaced to the boundary layer. Handlers map these onto
// HTTP statuses with errors.Is; anything else is an internal failure.
var (
	// ErrNotFound means a referenced entity (user, tweet, image) is absent.
	ErrNotFound = repositories.ErrNotFound
	// ErrForbidden means an ownership check failed, e.g. deleting a tweet
	// authored by somebody else.
	ErrForbidden = errors.New("forbidden")
)
