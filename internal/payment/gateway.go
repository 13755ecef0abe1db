package payment

import "context"

// Order carries everything the checkout needs to collect a payment for
// an already-created gateway order.
type Order struct {
	OrderID     string
	Amount      float64
	Currency    string
	BookingRef  string
	Description string
	Prefill     Prefill
}

// Prefill pre-populates the checkout form from the session profile.
type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// Result is the triple returned by a completed checkout. All three
// values go back to the server for signature verification; the client
// never inspects the signature itself.
type Result struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Outcome is how a checkout attempt ended. Exactly one of Result,
// Dismissed, or Err is meaningful.
type Outcome struct {
	Result    *Result
	Dismissed bool
	Err       error
}

// Gateway abstracts the hosted checkout so the booking flow can be
// driven without a live payment provider.
type Gateway interface {
	// Ready blocks until the checkout is reachable, polling at the
	// configured interval, or fails when the wait budget runs out.
	Ready(ctx context.Context) error

	// Open presents the checkout for the order and blocks until the
	// customer completes, dismisses, or the payment fails.
	Open(ctx context.Context, order *Order) (*Outcome, error)
}
