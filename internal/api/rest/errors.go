package rest

import (
	"errors"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
)

// isConflict reports whether the store rejected a write because the token
// id is already stored
func isConflict(err error) bool {
	return errors.Is(err, domain.ErrTokenAlreadyExists)
}

// isNotFound reports whether the store found no record for the token id
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrTokenNotFound)
}
