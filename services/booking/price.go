package booking

import (
	"time"

	"quadrafacil/models"

	"go.uber.org/zap"
)

// priceFor looks up the court's price for the UTC day-of-week of start.
// Days without a schedule entry fall back to the client-supplied value.
func priceFor(court *models.Court, start time.Time, clientPrice float64, logger *zap.Logger) float64 {
	key := models.WeekdayKey(start)
	if day, ok := court.Availability[key]; ok && day.PricePerHour != nil {
		return *day.PricePerHour
	}
	logger.Warn("no schedule price for day, using client fallback",
		zap.String("courtID", court.ID),
		zap.String("day", key),
		zap.Float64("fallback", clientPrice),
	)
	return clientPrice
}

// sameUTCDay reports whether a and b fall on the same UTC calendar day.
func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
