package booking

import (
	"testing"
	"time"

	"quadrafacil/models"

	"go.uber.org/zap"
)

func TestPriceForUsesUTCWeekday(t *testing.T) {
	court := testCourt()

	// 2026-09-06 is a Sunday; in a UTC+13 zone the local date is already
	// Monday, but the schedule lookup must use the UTC day.
	loc := time.FixedZone("UTC+13", 13*60*60)
	start := time.Date(2026, 9, 7, 2, 0, 0, 0, loc) // 2026-09-06 13:00 UTC

	if got := models.WeekdayKey(start); got != "sunday" {
		t.Fatalf("WeekdayKey = %q, want sunday", got)
	}
	if got := priceFor(court, start, 10, zap.NewNop()); got != 150 {
		t.Errorf("priceFor = %v, want sunday price 150", got)
	}
}

func TestSameUTCDay(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day",
			a:    time.Date(2026, 9, 6, 0, 0, 1, 0, time.UTC),
			b:    time.Date(2026, 9, 6, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2026, 9, 6, 23, 59, 59, 0, time.UTC),
			b:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day across zones",
			a:    time.Date(2026, 9, 6, 22, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 9, 7, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sameUTCDay(tc.a, tc.b); got != tc.want {
				t.Errorf("sameUTCDay = %v, want %v", got, tc.want)
			}
		})
	}
}
