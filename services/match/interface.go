package match

import (
	"context"

	"quadrafacil/models"
)

// ListFilter narrows the public open-match listing. Sport is an exact
// case-insensitive match against the court's sport; SearchText is a
// case-insensitive substring match against court name or address.
type ListFilter struct {
	Sport      string
	SearchText string
}

// Service is the match engine: match lifecycle, participant admission and
// seat accounting.
type Service interface {
	// Open converts a confirmed booking into a joinable match.
	Open(ctx context.Context, organizerID, bookingID string, seatCount int) (*models.Match, error)

	// RequestJoin adds the caller to the pending-request list. Requesting a
	// seat never consumes one; admission happens on approval.
	RequestJoin(ctx context.Context, userID, matchID string) error

	// ApproveRequest moves a pending requester into the confirmed set and
	// consumes a seat.
	ApproveRequest(ctx context.Context, organizerID, matchID, userID string) error

	// RejectRequest drops a pending request without touching seats.
	RejectRequest(ctx context.Context, organizerID, matchID, userID string) error

	// Leave removes a confirmed non-organizer participant and returns the
	// seat, reopening a full match.
	Leave(ctx context.Context, userID, matchID string) error

	// CancelByReservation cancels every match linked to the reservation;
	// invoked by the booking service when a booking is cancelled or rejected.
	CancelByReservation(ctx context.Context, reservationID string) error

	// ListOpen returns upcoming open matches enriched with court and
	// organizer display data.
	ListOpen(ctx context.Context, filter ListFilter) ([]models.MatchSummary, error)

	// Details returns one match enriched with court, organizer, participant
	// and pending-requester display data.
	Details(ctx context.Context, matchID string) (*models.MatchDetails, error)
}

// MembershipBridge mirrors match participant changes into the match's group
// chat. Calls happen after the match-state transaction commits and are
// best-effort: a failure is logged by the caller, never propagated.
type MembershipBridge interface {
	AddMember(ctx context.Context, matchID, userID string) error
	RemoveMember(ctx context.Context, matchID, userID string) error
}
