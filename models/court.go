package models

import "time"

// Court holds court metadata and the per-day price schedule.
type Court struct {
	ID      string `bson:"id" json:"id"`
	OwnerID string `bson:"owner_id" json:"ownerId"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	Sport   string `bson:"sport" json:"sport"`
	// Availability is keyed by weekday name ("sunday" ... "saturday").
	Availability map[string]DaySchedule `bson:"availability" json:"availability"`
}

// DaySchedule is one weekday entry of a court's schedule.
type DaySchedule struct {
	Open         string   `bson:"open,omitempty" json:"open,omitempty"`
	Close        string   `bson:"close,omitempty" json:"close,omitempty"`
	PricePerHour *float64 `bson:"price_per_hour,omitempty" json:"pricePerHour,omitempty"`
}

var weekdayKeys = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayKey returns the schedule key for the UTC day-of-week of t.
func WeekdayKey(t time.Time) string {
	return weekdayKeys[int(t.UTC().Weekday())]
}
