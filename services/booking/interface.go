package booking

import (
	"context"
	"time"

	"quadrafacil/models"
)

// CreateInput carries the client-supplied fields of a new booking.
// PriceTotal is only a fallback for days the court has no schedule entry.
type CreateInput struct {
	CourtID    string
	StartTime  time.Time
	EndTime    time.Time
	PriceTotal float64
}

// Service is the reservation lifecycle: creation, owner confirmation,
// cancellation (with the linked-match cascade) and the calendar listings.
type Service interface {
	Create(ctx context.Context, athleteID string, in CreateInput) (*models.Booking, error)
	Confirm(ctx context.Context, ownerID, bookingID string) error
	Reject(ctx context.Context, ownerID, bookingID string) error
	Cancel(ctx context.Context, athleteID, bookingID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.OwnerBookingView, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]models.AgendaItem, error)
}

// MatchCanceller is the slice of the match engine the booking service needs:
// cancelling or rejecting a booking must cancel every match linked to it.
type MatchCanceller interface {
	CancelByReservation(ctx context.Context, reservationID string) error
}
