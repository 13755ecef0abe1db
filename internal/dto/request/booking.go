package request

// CreateBookingRequest is the order-create payload assembled by the
// booking form. Dates travel as yyyy-MM-dd.
type CreateBookingRequest struct {
	RoomID          string  `json:"roomId" validate:"required"`
	CheckInDate     string  `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string  `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	NumberOfGuests  int     `json:"numberOfGuests" validate:"required,min=1"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	TotalAmount     float64 `json:"totalAmount" validate:"required,min=0"`
	TermsAccepted   bool    `json:"termsAccepted" validate:"eq=true"`
}

// DateRangeQuery backs the availability and pricing lookups.
type DateRangeQuery struct {
	RoomID    string `validate:"required"`
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
}
