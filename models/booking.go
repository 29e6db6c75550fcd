package models

import "time"

// Booking status values. A booking advances pending -> confirmed (owner
// action) or -> cancelled; completed bookings are closed by the court owner.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment confirmation states for the embedded payment sub-record.
const (
	PaymentAwaiting  = "awaiting"
	PaymentConfirmed = "confirmed"
)

// Booking represents a court reservation record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	CourtID    string    `bson:"court_id" json:"courtId"`
	AthleteID  string    `bson:"athlete_id" json:"athleteId"` // organizer/requester
	OwnerID    string    `bson:"owner_id" json:"ownerId"`     // court owner
	StartTime  time.Time `bson:"start_time" json:"startTime"`
	EndTime    time.Time `bson:"end_time" json:"endTime"`
	PriceTotal float64   `bson:"price_total" json:"priceTotal"`
	Status     string    `bson:"status" json:"status"`
	// LinkedMatchID is set exactly once when the booking is opened as a match.
	LinkedMatchID string    `bson:"linked_match_id,omitempty" json:"linkedMatchId,omitempty"`
	Payment       Payment   `bson:"payment" json:"payment"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Payment is the embedded payment sub-record of a booking.
type Payment struct {
	QRCode             string `bson:"qr_code,omitempty" json:"qrCode,omitempty"`
	ConfirmationStatus string `bson:"confirmation_status" json:"confirmationStatus"`
}
