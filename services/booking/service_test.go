package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "quadrafacil/database/repository/booking"
	courtRepo "quadrafacil/database/repository/court"
	matchRepo "quadrafacil/database/repository/match"
	"quadrafacil/models"
	"quadrafacil/services/fault"

	"go.uber.org/zap"
)

type fakeBookings struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookings) Create(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *b
	f.bookings[b.ID] = &c
	return nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	c := *b
	return &c, nil
}

func (f *fakeBookings) SetStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeBookings) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListByAthlete(ctx context.Context, athleteID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AthleteID == athleteID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeCourts struct {
	courts map[string]*models.Court
}

func (f *fakeCourts) GetByID(ctx context.Context, courtID string) (*models.Court, error) {
	c, ok := f.courts[courtID]
	if !ok {
		return nil, courtRepo.ErrNotFound
	}
	return c, nil
}

// fakeMatches only serves the agenda listing; the embedded interface covers
// the methods this service never calls.
type fakeMatches struct {
	matchRepo.MatchRepository
	byParticipant map[string][]models.Match
}

func (f *fakeMatches) ListByParticipant(ctx context.Context, userID string) ([]models.Match, error) {
	return f.byParticipant[userID], nil
}

type recordingCanceller struct {
	cancelled []string
}

func (r *recordingCanceller) CancelByReservation(ctx context.Context, reservationID string) error {
	r.cancelled = append(r.cancelled, reservationID)
	return nil
}

type stubIdentity struct{}

func (stubIdentity) Resolve(ctx context.Context, userID string) (models.UserProfile, error) {
	return models.UserProfile{ID: userID, DisplayName: "user " + userID}, nil
}

func floatPtr(v float64) *float64 { return &v }

func testCourt() *models.Court {
	return &models.Court{
		ID:      "court-1",
		OwnerID: "owner-1",
		Name:    "Arena Central",
		Address: "Rua das Palmeiras 10",
		Sport:   "futsal",
		Availability: map[string]models.DaySchedule{
			"monday": {Open: "08:00", Close: "22:00", PricePerHour: floatPtr(80)},
			"sunday": {Open: "09:00", Close: "20:00", PricePerHour: floatPtr(150)},
		},
	}
}

type fixture struct {
	svc       *DefaultBookingService
	bookings  *fakeBookings
	courts    *fakeCourts
	canceller *recordingCanceller
}

func newFixture() *fixture {
	bookings := newFakeBookings()
	courts := &fakeCourts{courts: map[string]*models.Court{"court-1": testCourt()}}
	canceller := &recordingCanceller{}
	svc := &DefaultBookingService{
		Bookings:    bookings,
		Courts:      courts,
		Matches:     nil,
		MatchEngine: canceller,
		Identity:    stubIdentity{},
		Logger:      zap.NewNop(),
	}
	return &fixture{svc: svc, bookings: bookings, courts: courts, canceller: canceller}
}

func wantFault(t *testing.T, err error, kind fault.Kind, reason string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s fault, got nil", kind)
	}
	if got := fault.KindOf(err); got != kind {
		t.Fatalf("fault kind = %q, want %q (err: %v)", got, kind, err)
	}
	if err.Error() != reason {
		t.Fatalf("reason = %q, want %q", err.Error(), reason)
	}
}

// nextWeekday returns the next future instant falling on the given UTC weekday.
func nextWeekday(day time.Weekday) time.Time {
	t := time.Now().UTC().Add(48 * time.Hour)
	for t.Weekday() != day {
		t = t.Add(24 * time.Hour)
	}
	return t
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the schedule price for the day of play", func(t *testing.T) {
		f := newFixture()
		start := nextWeekday(time.Monday)

		b, err := f.svc.Create(ctx, "alice", CreateInput{
			CourtID:    "court-1",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			PriceTotal: 999,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if b.PriceTotal != 80 {
			t.Errorf("price = %v, want monday schedule price 80", b.PriceTotal)
		}
		if b.Status != models.BookingStatusPending {
			t.Errorf("status = %q, want pending", b.Status)
		}
		if b.OwnerID != "owner-1" {
			t.Errorf("ownerID = %q, want court owner", b.OwnerID)
		}
		if b.Payment.ConfirmationStatus != models.PaymentAwaiting {
			t.Errorf("payment status = %q, want awaiting", b.Payment.ConfirmationStatus)
		}
	})

	t.Run("falls back to the client price on unscheduled days", func(t *testing.T) {
		f := newFixture()
		start := nextWeekday(time.Wednesday)

		b, err := f.svc.Create(ctx, "alice", CreateInput{
			CourtID:    "court-1",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			PriceTotal: 65,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if b.PriceTotal != 65 {
			t.Errorf("price = %v, want client fallback 65", b.PriceTotal)
		}
	})

	t.Run("validates input", func(t *testing.T) {
		f := newFixture()
		start := nextWeekday(time.Monday)

		_, err := f.svc.Create(ctx, "alice", CreateInput{StartTime: start, EndTime: start.Add(time.Hour)})
		wantFault(t, err, fault.KindInvalidInput, ReasonMissingFields)

		_, err = f.svc.Create(ctx, "alice", CreateInput{CourtID: "court-1", StartTime: start.Add(time.Hour), EndTime: start})
		wantFault(t, err, fault.KindInvalidInput, ReasonBadTimeWindow)

		_, err = f.svc.Create(ctx, "alice", CreateInput{CourtID: "court-1", StartTime: start, EndTime: start.Add(time.Hour), PriceTotal: -1})
		wantFault(t, err, fault.KindInvalidInput, ReasonNegativePrice)

		_, err = f.svc.Create(ctx, "alice", CreateInput{CourtID: "ghost", StartTime: start, EndTime: start.Add(time.Hour)})
		wantFault(t, err, fault.KindNotFound, ReasonCourtNotFound)
	})
}

func seedBooking(f *fixture, id, status string, start time.Time) *models.Booking {
	b := &models.Booking{
		ID:        id,
		CourtID:   "court-1",
		AthleteID: "alice",
		OwnerID:   "owner-1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
	}
	f.bookings.bookings[id] = b
	return b
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(72 * time.Hour)

	t.Run("owner confirms a pending booking", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusPending, future)

		if err := f.svc.Confirm(ctx, "owner-1", "b1"); err != nil {
			t.Fatalf("Confirm: %v", err)
		}
		if got := f.bookings.bookings["b1"].Status; got != models.BookingStatusConfirmed {
			t.Errorf("status = %q, want confirmed", got)
		}
	})

	t.Run("only the court owner confirms", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusPending, future)

		err := f.svc.Confirm(ctx, "mallory", "b1")
		wantFault(t, err, fault.KindForbidden, ReasonNotCourtOwner)
	})

	t.Run("only pending bookings confirm", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusConfirmed, future)

		err := f.svc.Confirm(ctx, "owner-1", "b1")
		wantFault(t, err, fault.KindInvalidState, ReasonNotPending)
	})
}

func TestRejectBooking(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(72 * time.Hour)

	t.Run("cancels the booking and its linked matches", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusPending, future)

		if err := f.svc.Reject(ctx, "owner-1", "b1"); err != nil {
			t.Fatalf("Reject: %v", err)
		}
		if got := f.bookings.bookings["b1"].Status; got != models.BookingStatusCancelled {
			t.Errorf("status = %q, want cancelled", got)
		}
		if len(f.canceller.cancelled) != 1 || f.canceller.cancelled[0] != "b1" {
			t.Errorf("cascade = %v, want [b1]", f.canceller.cancelled)
		}
	})

	t.Run("only the court owner rejects", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusPending, future)

		err := f.svc.Reject(ctx, "alice", "b1")
		wantFault(t, err, fault.KindForbidden, ReasonNotCourtOwner)
	})

	t.Run("closed bookings cannot be rejected", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusCancelled, future)
		seedBooking(f, "b2", models.BookingStatusCompleted, future)

		wantFault(t, f.svc.Reject(ctx, "owner-1", "b1"), fault.KindInvalidState, ReasonBookingClosed)
		wantFault(t, f.svc.Reject(ctx, "owner-1", "b2"), fault.KindInvalidState, ReasonBookingClosed)
		if len(f.canceller.cancelled) != 0 {
			t.Errorf("cascade ran on a blocked rejection")
		}
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(72 * time.Hour)

	t.Run("athlete cancels ahead of the day of play", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusConfirmed, future)

		if err := f.svc.Cancel(ctx, "alice", "b1"); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if got := f.bookings.bookings["b1"].Status; got != models.BookingStatusCancelled {
			t.Errorf("status = %q, want cancelled", got)
		}
		if len(f.canceller.cancelled) != 1 || f.canceller.cancelled[0] != "b1" {
			t.Errorf("cascade = %v, want [b1]", f.canceller.cancelled)
		}
	})

	t.Run("only the athlete cancels", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusConfirmed, future)

		err := f.svc.Cancel(ctx, "owner-1", "b1")
		wantFault(t, err, fault.KindForbidden, ReasonNotBookingOwner)
	})

	t.Run("cancelled and completed bookings stay closed", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusCancelled, future)
		seedBooking(f, "b2", models.BookingStatusCompleted, future)

		wantFault(t, f.svc.Cancel(ctx, "alice", "b1"), fault.KindInvalidState, ReasonBookingClosed)
		wantFault(t, f.svc.Cancel(ctx, "alice", "b2"), fault.KindInvalidState, ReasonBookingClosed)
	})

	t.Run("elapsed booking cannot be cancelled", func(t *testing.T) {
		f := newFixture()
		seedBooking(f, "b1", models.BookingStatusConfirmed, time.Now().UTC().Add(-48*time.Hour))

		err := f.svc.Cancel(ctx, "alice", "b1")
		wantFault(t, err, fault.KindInvalidState, ReasonBookingElapsed)
	})

	t.Run("same-day cancellation is blocked", func(t *testing.T) {
		f := newFixture()
		start := time.Now().UTC().Add(time.Hour)
		if start.Day() != time.Now().UTC().Day() {
			t.Skip("too close to UTC midnight for a stable same-day window")
		}
		seedBooking(f, "b1", models.BookingStatusConfirmed, start)

		err := f.svc.Cancel(ctx, "alice", "b1")
		wantFault(t, err, fault.KindInvalidState, ReasonSameDayCancel)
		if len(f.canceller.cancelled) != 0 {
			t.Errorf("cascade ran on a blocked cancellation")
		}
	})
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedBooking(f, "b1", models.BookingStatusPending, time.Now().UTC().Add(24*time.Hour))

	views, err := f.svc.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	if views[0].CourtName != "Arena Central" {
		t.Errorf("court name = %q", views[0].CourtName)
	}
	if views[0].AthleteName != "user alice" {
		t.Errorf("athlete name = %q", views[0].AthleteName)
	}
}

func TestListByAthlete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	now := time.Now().UTC()
	seedBooking(f, "b1", models.BookingStatusConfirmed, now.Add(24*time.Hour))

	f.svc.Matches = &fakeMatches{byParticipant: map[string][]models.Match{
		"alice": {
			{ID: "m-own", OrganizerID: "alice", CourtID: "court-1", StartTime: now.Add(24 * time.Hour)},
			{ID: "m-joined", OrganizerID: "bob", CourtID: "court-1", StartTime: now.Add(96 * time.Hour)},
		},
	}}

	items, err := f.svc.ListByAthlete(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByAthlete: %v", err)
	}
	// The organized match is already covered by the booking entry.
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Kind != models.AgendaKindMatch || items[0].Match.ID != "m-joined" {
		t.Errorf("first item = %+v, want the later joined match", items[0])
	}
	if items[1].Kind != models.AgendaKindBooking || items[1].Booking.ID != "b1" {
		t.Errorf("second item = %+v, want the booking", items[1])
	}
	if items[1].CourtName != "Arena Central" {
		t.Errorf("court name = %q", items[1].CourtName)
	}
}
