package response

import (
	"homestay-client/internal/data/entity"
	"homestay-client/pkg/utils"
)

type GuestDetailsResponse struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	NumberOfGuests int              `json:"numberOfGuests"`
	Address        string           `json:"address,omitempty"`
	IDProof        *IDProofResponse `json:"idProof,omitempty"`
}

type IDProofResponse struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Image  string `json:"image,omitempty"`
}

type BookingResponse struct {
	ID                 string               `json:"id"`
	BookingID          string               `json:"bookingId"`
	GuestDetails       GuestDetailsResponse `json:"guestDetails"`
	RoomID             string               `json:"roomId"`
	RoomName           string               `json:"roomName,omitempty"`
	CheckInDate        string               `json:"checkInDate"`
	CheckOutDate       string               `json:"checkOutDate"`
	ActualCheckInTime  string               `json:"actualCheckInTime,omitempty"`
	ActualCheckOutTime string               `json:"actualCheckOutTime,omitempty"`
	TotalAmount        float64              `json:"totalAmount"`
	PriceBreakdown     []DailyRateResponse  `json:"priceBreakdown,omitempty"`
	Status             string               `json:"status"`
	PaymentStatus      string               `json:"paymentStatus"`
	RazorpayOrderID    string               `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID  string               `json:"razorpayPaymentId,omitempty"`
	SpecialRequests    string               `json:"specialRequests,omitempty"`
	CancellationReason string               `json:"cancellationReason,omitempty"`
	Notes              string               `json:"notes,omitempty"`
	CreatedAt          string               `json:"createdAt,omitempty"`
	UpdatedAt          string               `json:"updatedAt,omitempty"`
}

// Helper converters
func BookingToEntity(b *BookingResponse) *entity.Booking {
	checkIn, _ := utils.ParseDate(b.CheckInDate)
	checkOut, _ := utils.ParseDate(b.CheckOutDate)

	breakdown := make([]entity.DailyRate, 0, len(b.PriceBreakdown))
	for _, rate := range b.PriceBreakdown {
		date, err := utils.ParseDate(rate.Date)
		if err != nil {
			continue
		}
		breakdown = append(breakdown, entity.DailyRate{Date: date, Price: rate.Price})
	}

	booking := &entity.Booking{
		ID:        b.ID,
		BookingID: b.BookingID,
		GuestDetails: entity.GuestDetails{
			Name:           b.GuestDetails.Name,
			Email:          b.GuestDetails.Email,
			Phone:          b.GuestDetails.Phone,
			NumberOfGuests: b.GuestDetails.NumberOfGuests,
			Address:        b.GuestDetails.Address,
		},
		RoomID:             b.RoomID,
		RoomName:           b.RoomName,
		CheckInDate:        checkIn,
		CheckOutDate:       checkOut,
		TotalAmount:        b.TotalAmount,
		PriceBreakdown:     breakdown,
		Status:             entity.BookingStatus(b.Status),
		PaymentStatus:      entity.PaymentStatus(b.PaymentStatus),
		RazorpayOrderID:    b.RazorpayOrderID,
		RazorpayPaymentID:  b.RazorpayPaymentID,
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		Notes:              b.Notes,
		CreatedAt:          parseTimestamp(b.CreatedAt),
		UpdatedAt:          parseTimestamp(b.UpdatedAt),
	}

	if b.GuestDetails.IDProof != nil {
		booking.GuestDetails.IDProof = &entity.IDProof{
			Type:   b.GuestDetails.IDProof.Type,
			Number: b.GuestDetails.IDProof.Number,
			Image:  b.GuestDetails.IDProof.Image,
		}
	}

	if b.ActualCheckInTime != "" {
		t := parseTimestamp(b.ActualCheckInTime)
		booking.ActualCheckInTime = &t
	}
	if b.ActualCheckOutTime != "" {
		t := parseTimestamp(b.ActualCheckOutTime)
		booking.ActualCheckOutTime = &t
	}

	return booking
}
