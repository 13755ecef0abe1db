package entity

import "time"

// DailyRate is one night of the server-computed price breakdown. The
// client displays the server's figures and never prices anything
// itself.
type DailyRate struct {
	Date  time.Time
	Price float64
}

// PricingBreakdown is ephemeral: recomputed whenever the date range
// changes, never persisted beyond the active booking form.
type PricingBreakdown struct {
	Breakdown   []DailyRate
	TotalAmount float64
}

// AvailabilityWindow shares the breakdown's lifecycle.
type AvailabilityWindow struct {
	Date        time.Time
	IsAvailable bool
	Reason      string
}
