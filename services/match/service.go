package match

import (
	"context"
	"errors"
	"time"

	bookingRepo "quadrafacil/database/repository/booking"
	courtRepo "quadrafacil/database/repository/court"
	matchRepo "quadrafacil/database/repository/match"
	"quadrafacil/models"
	"quadrafacil/services/fault"
	"quadrafacil/services/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMatchService implements Service on top of the injected repositories.
type DefaultMatchService struct {
	Matches  matchRepo.MatchRepository
	Bookings bookingRepo.BookingRepository
	Courts   courtRepo.CourtRepository
	Identity identity.Directory
	Bridge   MembershipBridge
	Logger   *zap.Logger
}

func (svc *DefaultMatchService) Open(ctx context.Context, organizerID, bookingID string, seatCount int) (*models.Match, error) {
	if seatCount < 1 {
		return nil, fault.InvalidInput(ReasonSeatCountInvalid)
	}

	booking, err := svc.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, fault.NotFound(ReasonBookingNotFound)
		}
		return nil, err
	}
	if booking.AthleteID != organizerID {
		return nil, fault.Forbidden(ReasonNotBookingOwner)
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, fault.InvalidState(ReasonBookingNotConfirmed)
	}
	if booking.LinkedMatchID != "" {
		return nil, fault.Conflict(ReasonAlreadyLinked)
	}
	if !booking.StartTime.After(time.Now()) {
		return nil, fault.InvalidState(ReasonBookingElapsed)
	}

	price := booking.PriceTotal
	m := &models.Match{
		ID:                    uuid.New().String(),
		ReservationID:         booking.ID,
		OrganizerID:           organizerID,
		CourtID:               booking.CourtID,
		StartTime:             booking.StartTime,
		EndTime:               booking.EndTime,
		AvailableSeats:        seatCount,
		ConfirmedParticipants: []string{organizerID},
		PendingRequests:       []string{},
		Status:                models.MatchStatusOpen,
		PriceTotal:            &price,
		CreatedAt:             time.Now().UTC(),
	}

	if err := svc.Matches.CreateForBooking(ctx, m); err != nil {
		if errors.Is(err, matchRepo.ErrAlreadyLinked) {
			return nil, fault.Conflict(ReasonAlreadyLinked)
		}
		return nil, err
	}

	svc.Logger.Info("match opened",
		zap.String("matchID", m.ID),
		zap.String("bookingID", booking.ID),
		zap.Int("seats", seatCount),
	)
	return m, nil
}

func (svc *DefaultMatchService) RequestJoin(ctx context.Context, userID, matchID string) error {
	_, err := svc.Matches.Mutate(ctx, matchID, func(m *models.Match) error {
		if m.Status == models.MatchStatusCancelled {
			return fault.InvalidState(ReasonMatchCancelled)
		}
		if !m.StartTime.After(time.Now()) {
			return fault.InvalidState(ReasonMatchElapsed)
		}
		if m.HasConfirmed(userID) {
			return fault.Conflict(ReasonAlreadyParticipating)
		}
		if m.HasPending(userID) {
			return fault.Conflict(ReasonAlreadyPending)
		}
		// Requesting is seat-independent: a full match still takes pending
		// requests, seats are only consumed on approval.
		m.PendingRequests = append(m.PendingRequests, userID)
		return nil
	})
	return svc.mutationErr(err)
}

func (svc *DefaultMatchService) ApproveRequest(ctx context.Context, organizerID, matchID, userID string) error {
	_, err := svc.Matches.Mutate(ctx, matchID, func(m *models.Match) error {
		if m.Status == models.MatchStatusCancelled {
			return fault.InvalidState(ReasonMatchCancelled)
		}
		if m.OrganizerID != organizerID {
			return fault.Forbidden(ReasonOnlyOrganizer)
		}
		if !m.HasPending(userID) {
			return fault.InvalidState(ReasonNotPending)
		}
		// Re-checked under the snapshot: other approvals may have consumed
		// the seats since the request was made.
		if m.AvailableSeats <= 0 {
			return fault.InvalidState(ReasonNoSeats)
		}
		m.PendingRequests = removeID(m.PendingRequests, userID)
		m.ConfirmedParticipants = append(m.ConfirmedParticipants, userID)
		m.AvailableSeats--
		if m.AvailableSeats == 0 {
			m.Status = models.MatchStatusFull
		} else {
			m.Status = models.MatchStatusOpen
		}
		return nil
	})
	if err != nil {
		return svc.mutationErr(err)
	}

	if err := svc.Bridge.AddMember(ctx, matchID, userID); err != nil {
		svc.Logger.Warn("chat bridge: add member failed",
			zap.String("matchID", matchID), zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (svc *DefaultMatchService) RejectRequest(ctx context.Context, organizerID, matchID, userID string) error {
	_, err := svc.Matches.Mutate(ctx, matchID, func(m *models.Match) error {
		if m.Status == models.MatchStatusCancelled {
			return fault.InvalidState(ReasonMatchCancelled)
		}
		if m.OrganizerID != organizerID {
			return fault.Forbidden(ReasonOnlyOrganizer)
		}
		if !m.HasPending(userID) {
			return fault.InvalidState(ReasonNotPending)
		}
		m.PendingRequests = removeID(m.PendingRequests, userID)
		return nil
	})
	if err != nil {
		return svc.mutationErr(err)
	}

	// A rejected user should never hold chat membership, but a race could
	// have granted it; removal is the same bridge call leave uses.
	if err := svc.Bridge.RemoveMember(ctx, matchID, userID); err != nil {
		svc.Logger.Warn("chat bridge: remove member failed",
			zap.String("matchID", matchID), zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (svc *DefaultMatchService) Leave(ctx context.Context, userID, matchID string) error {
	_, err := svc.Matches.Mutate(ctx, matchID, func(m *models.Match) error {
		if m.Status == models.MatchStatusCancelled {
			return fault.InvalidState(ReasonMatchCancelled)
		}
		if !m.StartTime.After(time.Now()) {
			return fault.InvalidState(ReasonMatchElapsed)
		}
		if !m.HasConfirmed(userID) {
			return fault.InvalidState(ReasonNotParticipant)
		}
		if m.OrganizerID == userID {
			return fault.Forbidden(ReasonOrganizerCannotLeave)
		}
		m.ConfirmedParticipants = removeID(m.ConfirmedParticipants, userID)
		m.AvailableSeats++
		// A departure always reopens a full match.
		m.Status = models.MatchStatusOpen
		return nil
	})
	if err != nil {
		return svc.mutationErr(err)
	}

	if err := svc.Bridge.RemoveMember(ctx, matchID, userID); err != nil {
		svc.Logger.Warn("chat bridge: remove member failed",
			zap.String("matchID", matchID), zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (svc *DefaultMatchService) CancelByReservation(ctx context.Context, reservationID string) error {
	count, err := svc.Matches.CancelByReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if count > 0 {
		svc.Logger.Info("cancelled matches linked to reservation",
			zap.String("reservationID", reservationID), zap.Int64("count", count))
	}
	return nil
}

// mutationErr maps repository-level failures of the transactional mutation
// path onto the service taxonomy.
func (svc *DefaultMatchService) mutationErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matchRepo.ErrNotFound):
		return fault.NotFound(ReasonMatchNotFound)
	case errors.Is(err, matchRepo.ErrConflict):
		return fault.Conflict(ReasonConcurrentUpdate)
	default:
		return err
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
