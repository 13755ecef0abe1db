package response

type PaymentOrderResponse struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type PaymentVerifyResponse struct {
	Verified  bool   `json:"verified"`
	BookingID string `json:"bookingId,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

type PaymentStatusResponse struct {
	PaymentID string  `json:"paymentId"`
	OrderID   string  `json:"orderId,omitempty"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount,omitempty"`
}

type RefundResponse struct {
	RefundID string  `json:"refundId"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

// ErrorResponse is the backend's error payload shape.
type ErrorResponse struct {
	Message string `json:"message"`
}
