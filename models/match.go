package models

import "time"

// Match status values. A match is open while seats remain, full when the
// last seat is taken, and cancelled (terminal) when its booking falls through.
const (
	MatchStatusOpen      = "open"
	MatchStatusFull      = "full"
	MatchStatusCancelled = "cancelled"
)

// Match is an open match created from a confirmed booking. The booking stays
// authoritative for the time window and price; courtId and the times are
// denormalized here for query efficiency.
type Match struct {
	ID                    string    `bson:"id" json:"id"`
	ReservationID         string    `bson:"reservation_id" json:"reservationId"`
	OrganizerID           string    `bson:"organizer_id" json:"organizerId"`
	CourtID               string    `bson:"court_id" json:"courtId"`
	StartTime             time.Time `bson:"start_time" json:"startTime"`
	EndTime               time.Time `bson:"end_time" json:"endTime"`
	AvailableSeats        int       `bson:"available_seats" json:"availableSeats"`
	ConfirmedParticipants []string  `bson:"confirmed_participants" json:"confirmedParticipants"`
	PendingRequests       []string  `bson:"pending_requests" json:"pendingRequests"`
	Status                string    `bson:"status" json:"status"`
	// PriceTotal is copied from the booking at creation. Nil on records that
	// predate the field; the read path backfills it once, absent -> present.
	PriceTotal *float64 `bson:"price_total,omitempty" json:"priceTotal,omitempty"`
	// Revision guards the read-modify-write cycle of every mutation.
	Revision  int64     `bson:"revision" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// HasConfirmed reports whether userID is a confirmed participant.
func (m *Match) HasConfirmed(userID string) bool {
	for _, id := range m.ConfirmedParticipants {
		if id == userID {
			return true
		}
	}
	return false
}

// HasPending reports whether userID has a pending join request.
func (m *Match) HasPending(userID string) bool {
	for _, id := range m.PendingRequests {
		if id == userID {
			return true
		}
	}
	return false
}
