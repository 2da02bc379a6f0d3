package utils

import (
	"strconv"
	"strings"
	"time"
)

// Reservation times are wall-clock values without a timezone. Everything
// is normalized to a naive instant (UTC location, zone discarded) before
// it is compared or stored, so a 14:00 booking means 14:00 at the club
// whatever zone the client sent.

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

// StripZone drops the location of t while keeping the wall-clock reading.
func StripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// ParseStartTime resolves a reservation start from either a full RFC 3339
// timestamp or an "HH:MM" string paired with an optional "YYYY-MM-DD"
// date (today when absent).
func ParseStartTime(raw string, date string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return StripZone(ts), nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return time.Time{}, ErrInvalidTimeFormat
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, ErrInvalidTimeFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, ErrInvalidTimeFormat
	}

	day := StripZone(time.Now())
	if date != "" {
		day, err = ParseDate(date)
		if err != nil {
			return time.Time{}, ErrInvalidTimeFormat
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

// ParseDate parses a calendar date as a naive midnight instant.
func ParseDate(date string) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return day, nil
}

// DayBounds returns the half-open [midnight, next midnight) window
// containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
