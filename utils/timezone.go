package utils

import (
	"fmt"
	"time"

	"github.com/talenthub/booking-api/models"
)

// LoadZone resolves an IANA zone id, defaulting to UTC when blank.
func LoadZone(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(timezone)
}

// LocalDateTimeToUTC interprets an epoch-millisecond timestamp in the named
// zone to obtain a calendar date, combines that date with an "HH:MM"
// wall-clock time, and converts the resulting local date-time to UTC. DST
// transitions are handled by the zone database.
func LocalDateTimeToUTC(dateMillis int64, wallClock string, timezone string) (time.Time, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %v", timezone, err)
	}
	minutes, err := models.MinuteOfDay(wallClock)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := time.UnixMilli(dateMillis).In(loc).Date()
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, loc).UTC(), nil
}

// UTCInstant formats a time as an ISO-8601 UTC instant string.
func UTCInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// InstantToLocal parses an ISO-8601 UTC instant and converts it to the
// named zone's wall clock.
func InstantToLocal(instant string, timezone string) (time.Time, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %v", timezone, err)
	}
	t, err := time.Parse(time.RFC3339, instant)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q: %v", instant, err)
	}
	return t.In(loc), nil
}
