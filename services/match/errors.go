package match

// Reason strings returned to callers. Each names the exact rule that failed.
const (
	ReasonBookingNotFound     = "booking not found"
	ReasonMatchNotFound       = "match not found"
	ReasonNotBookingOwner     = "you do not own this booking"
	ReasonBookingNotConfirmed = "only confirmed bookings can be opened as a match"
	ReasonAlreadyLinked       = "this booking is already linked to an open match"
	ReasonBookingElapsed      = "cannot open a match for a booking that has already occurred"
	ReasonSeatCountInvalid    = "seat count must be at least 1"

	ReasonMatchCancelled       = "this match has been cancelled"
	ReasonMatchElapsed         = "this match has already started"
	ReasonAlreadyParticipating = "you are already participating in this match"
	ReasonAlreadyPending       = "your join request is already pending"
	ReasonNoSeats              = "no seats available"
	ReasonOnlyOrganizer        = "only the organizer can approve or reject join requests"
	ReasonNotPending           = "this user has no pending join request"
	ReasonNotParticipant       = "you are not a participant in this match"
	ReasonOrganizerCannotLeave = "the organizer cannot leave the match, only cancel it"

	ReasonConcurrentUpdate = "the match was modified concurrently, please try again"
)
