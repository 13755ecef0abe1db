package request

type CreatePaymentOrderRequest struct {
	BookingID string  `json:"bookingId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,min=1"`
}

// VerifyPaymentRequest carries the checkout widget's result triple.
// Field names follow the gateway's callback payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type RefundRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
}
