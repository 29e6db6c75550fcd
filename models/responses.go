package models

// Enriched response shapes. Enrichment never mutates the stored records
// (except the one price backfill); display data is joined into these DTOs.

// MatchSummary is one entry of the public open-match listing.
type MatchSummary struct {
	Match
	CourtName    string      `json:"courtName"`
	CourtAddress string      `json:"courtAddress"`
	Sport        string      `json:"sport"`
	Organizer    UserProfile `json:"organizer"`
}

// MatchDetails is the full enriched view of a single match.
type MatchDetails struct {
	Match
	Court        *Court        `json:"court,omitempty"`
	Organizer    UserProfile   `json:"organizer"`
	Participants []UserProfile `json:"participants"`
	PendingUsers []UserProfile `json:"pendingRequesters"`
}

// OwnerBookingView is a booking as shown to the court owner.
type OwnerBookingView struct {
	Booking
	CourtName   string `json:"courtName"`
	AthleteName string `json:"athleteName"`
}

// Agenda item kinds for the athlete calendar.
const (
	AgendaKindBooking = "booking"
	AgendaKindMatch   = "match"
)

// AgendaItem is one entry of the athlete calendar: either an own booking or
// a match joined as a non-organizer participant.
type AgendaItem struct {
	Kind         string   `json:"type"`
	Booking      *Booking `json:"booking,omitempty"`
	Match        *Match   `json:"match,omitempty"`
	CourtName    string   `json:"courtName"`
	CourtAddress string   `json:"courtAddress"`
}

// ChatView is a chat as shown in a user's conversation list.
type ChatView struct {
	Chat
	OtherUserID   string `json:"otherUserId,omitempty"`
	OtherUserName string `json:"otherUserName,omitempty"`
}
