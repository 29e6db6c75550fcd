package booking

import (
	"context"
	"errors"
	"sort"
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

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Bookings    bookingRepo.BookingRepository
	Courts      courtRepo.CourtRepository
	Matches     matchRepo.MatchRepository
	MatchEngine MatchCanceller
	Identity    identity.Directory
	Logger      *zap.Logger
}

func (svc *DefaultBookingService) Create(ctx context.Context, athleteID string, in CreateInput) (*models.Booking, error) {
	if in.CourtID == "" || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, fault.InvalidInput(ReasonMissingFields)
	}
	if !in.StartTime.Before(in.EndTime) {
		return nil, fault.InvalidInput(ReasonBadTimeWindow)
	}
	if in.PriceTotal < 0 {
		return nil, fault.InvalidInput(ReasonNegativePrice)
	}

	court, err := svc.Courts.GetByID(ctx, in.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrNotFound) {
			return nil, fault.NotFound(ReasonCourtNotFound)
		}
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		CourtID:    court.ID,
		AthleteID:  athleteID,
		OwnerID:    court.OwnerID,
		StartTime:  in.StartTime.UTC(),
		EndTime:    in.EndTime.UTC(),
		PriceTotal: priceFor(court, in.StartTime, in.PriceTotal, svc.Logger),
		Status:     models.BookingStatusPending,
		Payment:    models.Payment{ConfirmationStatus: models.PaymentAwaiting},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	svc.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("courtID", court.ID),
		zap.Float64("price", booking.PriceTotal),
	)
	return booking, nil
}

func (svc *DefaultBookingService) Confirm(ctx context.Context, ownerID, bookingID string) error {
	booking, err := svc.get(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.OwnerID != ownerID {
		return fault.Forbidden(ReasonNotCourtOwner)
	}
	if booking.Status != models.BookingStatusPending {
		return fault.InvalidState(ReasonNotPending)
	}
	return svc.Bookings.SetStatus(ctx, bookingID, models.BookingStatusConfirmed)
}

func (svc *DefaultBookingService) Reject(ctx context.Context, ownerID, bookingID string) error {
	booking, err := svc.get(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.OwnerID != ownerID {
		return fault.Forbidden(ReasonNotCourtOwner)
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return fault.InvalidState(ReasonBookingClosed)
	}
	if err := svc.Bookings.SetStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	return svc.MatchEngine.CancelByReservation(ctx, bookingID)
}

func (svc *DefaultBookingService) Cancel(ctx context.Context, athleteID, bookingID string) error {
	booking, err := svc.get(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.AthleteID != athleteID {
		return fault.Forbidden(ReasonNotBookingOwner)
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return fault.InvalidState(ReasonBookingClosed)
	}
	now := time.Now()
	if booking.StartTime.Before(now) {
		return fault.InvalidState(ReasonBookingElapsed)
	}
	if sameUTCDay(booking.StartTime, now) {
		return fault.InvalidState(ReasonSameDayCancel)
	}
	if err := svc.Bookings.SetStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	return svc.MatchEngine.CancelByReservation(ctx, bookingID)
}

func (svc *DefaultBookingService) ListByOwner(ctx context.Context, ownerID string) ([]models.OwnerBookingView, error) {
	bookings, err := svc.Bookings.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]models.OwnerBookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.OwnerBookingView{Booking: b}
		if court, err := svc.Courts.GetByID(ctx, b.CourtID); err != nil {
			svc.Logger.Warn("court lookup failed during enrichment",
				zap.String("courtID", b.CourtID), zap.String("bookingID", b.ID), zap.Error(err))
		} else {
			view.CourtName = court.Name
		}
		if profile, err := svc.Identity.Resolve(ctx, b.AthleteID); err != nil {
			view.AthleteName = identity.Placeholder(b.AthleteID).DisplayName
		} else {
			view.AthleteName = profile.DisplayName
		}
		views = append(views, view)
	}
	return views, nil
}

func (svc *DefaultBookingService) ListByAthlete(ctx context.Context, athleteID string) ([]models.AgendaItem, error) {
	bookings, err := svc.Bookings.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	items := make([]models.AgendaItem, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		item := models.AgendaItem{Kind: models.AgendaKindBooking, Booking: &b}
		svc.enrichAgendaItem(ctx, &item, b.CourtID)
		items = append(items, item)
	}

	// Matches joined as a participant; own bookings above already cover the
	// organizer case.
	matches, err := svc.Matches.ListByParticipant(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		m := matches[i]
		if m.OrganizerID == athleteID {
			continue
		}
		item := models.AgendaItem{Kind: models.AgendaKindMatch, Match: &m}
		svc.enrichAgendaItem(ctx, &item, m.CourtID)
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return agendaStart(items[i]).After(agendaStart(items[j]))
	})
	return items, nil
}

func (svc *DefaultBookingService) enrichAgendaItem(ctx context.Context, item *models.AgendaItem, courtID string) {
	court, err := svc.Courts.GetByID(ctx, courtID)
	if err != nil {
		svc.Logger.Warn("court lookup failed during enrichment",
			zap.String("courtID", courtID), zap.Error(err))
		return
	}
	item.CourtName = court.Name
	item.CourtAddress = court.Address
}

func (svc *DefaultBookingService) get(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, fault.NotFound(ReasonBookingNotFound)
		}
		return nil, err
	}
	return booking, nil
}

func agendaStart(item models.AgendaItem) time.Time {
	if item.Booking != nil {
		return item.Booking.StartTime
	}
	return item.Match.StartTime
}
