package bookingRepo

import (
	"context"
	"errors"

	"quadrafacil/models"
)

// ErrNotFound is returned when no booking exists for the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository owns court reservation records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	SetStatus(ctx context.Context, bookingID, status string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]models.Booking, error)
}
