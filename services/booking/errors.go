package booking

// Reason strings returned to callers.
const (
	ReasonBookingNotFound = "booking not found"
	ReasonCourtNotFound   = "court not found"
	ReasonMissingFields   = "courtId, startTime and endTime are required"
	ReasonBadTimeWindow   = "startTime must be before endTime"
	ReasonNegativePrice   = "price must be non-negative"
	ReasonNotCourtOwner   = "you do not have permission to change this booking"
	ReasonNotBookingOwner = "you do not have permission to cancel this booking"
	ReasonNotPending      = "only pending bookings can be confirmed"
	ReasonBookingClosed   = "this booking can no longer be cancelled"
	ReasonBookingElapsed  = "cannot cancel a booking that has already occurred"
	ReasonSameDayCancel   = "cannot cancel a booking on the day of play"
)
