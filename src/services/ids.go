package services

import (
	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// parseID turns a path parameter into a UUID. Malformed ids map to
// ErrNotFound so clients get a 404, never a server error.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repositories.ErrNotFound
	}
	return parsed, nil
}
