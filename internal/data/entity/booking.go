package entity

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type IDProof struct {
	Type   string
	Number string
	Image  string
}

type GuestDetails struct {
	Name           string
	Email          string
	Phone          string
	NumberOfGuests int
	Address        string
	IDProof        *IDProof
}

// Booking transitions (check-in/out, cancellation) are server-driven;
// the client only re-fetches.
type Booking struct {
	ID                 string
	BookingID          string // human-readable reference
	GuestDetails       GuestDetails
	RoomID             string
	RoomName           string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	ActualCheckInTime  *time.Time
	ActualCheckOutTime *time.Time
	TotalAmount        float64
	PriceBreakdown     []DailyRate
	Status             BookingStatus
	PaymentStatus      PaymentStatus
	RazorpayOrderID    string
	RazorpayPaymentID  string
	SpecialRequests    string
	CancellationReason string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
