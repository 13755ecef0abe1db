package utils

import (
	"time"
)

// DateLayout is the wire format for calendar dates (yyyy-MM-dd).
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// StartOfDay normalizes to midnight of t's calendar day in its own
// location. Truncating on absolute time would shift the day near
// midnight for non-UTC zones.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Nights counts the nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
