package match

import (
	"context"
	"testing"

	"quadrafacil/models"
	"quadrafacil/services/fault"
)

func seedCourt(svc *DefaultMatchService, court *models.Court) {
	svc.Courts.(*fakeCourts).courts[court.ID] = court
}

func TestListOpen(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc, _ := newTestService(store)
	m := openTestMatch(t, store, svc, 2)
	seedCourt(svc, &models.Court{
		ID:      "court-1",
		OwnerID: "owner-1",
		Name:    "Arena Central",
		Address: "Rua das Palmeiras 10",
		Sport:   "futsal",
	})

	t.Run("lists upcoming open matches", func(t *testing.T) {
		summaries, err := svc.ListOpen(ctx, ListFilter{})
		if err != nil {
			t.Fatalf("ListOpen: %v", err)
		}
		if len(summaries) != 1 {
			t.Fatalf("got %d summaries, want 1", len(summaries))
		}
		s := summaries[0]
		if s.ID != m.ID {
			t.Errorf("match id = %q, want %q", s.ID, m.ID)
		}
		if s.CourtName != "Arena Central" || s.Sport != "futsal" {
			t.Errorf("court enrichment = %q/%q", s.CourtName, s.Sport)
		}
		if s.Organizer.DisplayName != "user alice" {
			t.Errorf("organizer = %q", s.Organizer.DisplayName)
		}
	})

	t.Run("sport filter is case-insensitive", func(t *testing.T) {
		summaries, err := svc.ListOpen(ctx, ListFilter{Sport: "FUTSAL"})
		if err != nil {
			t.Fatalf("ListOpen: %v", err)
		}
		if len(summaries) != 1 {
			t.Errorf("got %d summaries, want 1", len(summaries))
		}

		summaries, err = svc.ListOpen(ctx, ListFilter{Sport: "tennis"})
		if err != nil {
			t.Fatalf("ListOpen: %v", err)
		}
		if len(summaries) != 0 {
			t.Errorf("got %d summaries for wrong sport, want 0", len(summaries))
		}
	})

	t.Run("search matches name or address", func(t *testing.T) {
		for _, q := range []string{"arena", "palmeiras"} {
			summaries, err := svc.ListOpen(ctx, ListFilter{SearchText: q})
			if err != nil {
				t.Fatalf("ListOpen(%q): %v", q, err)
			}
			if len(summaries) != 1 {
				t.Errorf("search %q: got %d summaries, want 1", q, len(summaries))
			}
		}

		summaries, err := svc.ListOpen(ctx, ListFilter{SearchText: "copacabana"})
		if err != nil {
			t.Fatalf("ListOpen: %v", err)
		}
		if len(summaries) != 0 {
			t.Errorf("got %d summaries for unmatched search, want 0", len(summaries))
		}
	})

	t.Run("missing court falls back to placeholder name", func(t *testing.T) {
		delete(svc.Courts.(*fakeCourts).courts, "court-1")
		defer seedCourt(svc, &models.Court{ID: "court-1", Name: "Arena Central", Address: "Rua das Palmeiras 10", Sport: "futsal"})

		summaries, err := svc.ListOpen(ctx, ListFilter{})
		if err != nil {
			t.Fatalf("ListOpen: %v", err)
		}
		if len(summaries) != 1 {
			t.Fatalf("got %d summaries, want 1", len(summaries))
		}
		if summaries[0].CourtName != unknownCourtName {
			t.Errorf("court name = %q, want fallback", summaries[0].CourtName)
		}
	})
}

func TestDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves participants and pending users", func(t *testing.T) {
		store := newFakeStore()
		svc, _ := newTestService(store)
		m := openTestMatch(t, store, svc, 2)
		svc.RequestJoin(ctx, "bob", m.ID)
		seedCourt(svc, &models.Court{ID: "court-1", Name: "Arena Central"})

		details, err := svc.Details(ctx, m.ID)
		if err != nil {
			t.Fatalf("Details: %v", err)
		}
		if details.Court == nil || details.Court.Name != "Arena Central" {
			t.Errorf("court = %+v", details.Court)
		}
		if len(details.Participants) != 1 || details.Participants[0].ID != "alice" {
			t.Errorf("participants = %+v", details.Participants)
		}
		if len(details.PendingUsers) != 1 || details.PendingUsers[0].ID != "bob" {
			t.Errorf("pending users = %+v", details.PendingUsers)
		}
	})

	t.Run("unknown match", func(t *testing.T) {
		store := newFakeStore()
		svc, _ := newTestService(store)

		_, err := svc.Details(ctx, "nope")
		wantFault(t, err, fault.KindNotFound, ReasonMatchNotFound)
	})
}

func TestPriceBackfill(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc, _ := newTestService(store)
	m := openTestMatch(t, store, svc, 2)

	// Simulate a record written before the price field existed.
	store.matches[m.ID].PriceTotal = nil

	details, err := svc.Details(ctx, m.ID)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if details.PriceTotal == nil || *details.PriceTotal != 120 {
		t.Fatalf("response price = %v, want 120 from the booking", details.PriceTotal)
	}

	stored, _ := store.GetByID(ctx, m.ID)
	if stored.PriceTotal == nil || *stored.PriceTotal != 120 {
		t.Errorf("stored price = %v, backfill must persist", stored.PriceTotal)
	}

	// A present price is never overwritten.
	store.bookings["b1"].PriceTotal = 999
	if _, err := svc.Details(ctx, m.ID); err != nil {
		t.Fatalf("Details: %v", err)
	}
	stored, _ = store.GetByID(ctx, m.ID)
	if *stored.PriceTotal != 120 {
		t.Errorf("stored price = %v, want original 120", *stored.PriceTotal)
	}

	// Once backfilled, further reads leave the record untouched.
	before := stored.Revision
	if _, err := svc.Details(ctx, m.ID); err != nil {
		t.Fatalf("Details: %v", err)
	}
	stored, _ = store.GetByID(ctx, m.ID)
	if stored.Revision != before {
		t.Errorf("revision moved %d -> %d on a pure read", before, stored.Revision)
	}
}
