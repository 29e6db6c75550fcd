package courtRepo

import (
	"context"
	"errors"

	"quadrafacil/models"
)

// ErrNotFound is returned when no court exists for the given id.
var ErrNotFound = errors.New("court not found")

// CourtRepository reads court metadata and price schedules. Court CRUD lives
// in the owner-facing admin surface, outside this service.
type CourtRepository interface {
	GetByID(ctx context.Context, courtID string) (*models.Court, error)
}
