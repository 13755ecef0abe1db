package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homestay-client/internal/api"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/dto/request"
	"homestay-client/internal/nav"
	"homestay-client/internal/payment"
	"homestay-client/internal/store"
	"homestay-client/pkg/notice"
	"homestay-client/pkg/utils"

	"go.uber.org/zap"
)

// Step is the wizard's position. Transitions only move through the
// exported methods; there is no way to reach payment without a created
// booking order behind it.
type Step string

const (
	StepRoomSelected     Step = "ROOM_SELECTED"
	StepDatesChosen      Step = "DATES_CHOSEN"
	StepQuoteResolved    Step = "QUOTE_RESOLVED"
	StepFormSubmitted    Step = "FORM_SUBMITTED"
	StepPaymentInitiated Step = "PAYMENT_INITIATED"
	StepPaymentConfirmed Step = "PAYMENT_CONFIRMED"
	StepPaymentFailed    Step = "PAYMENT_FAILED"
	StepPaymentCancelled Step = "PAYMENT_CANCELLED"
)

// Wizard drives a single reservation from room selection through
// server-verified payment. One wizard per booking attempt.
type Wizard struct {
	rooms     store.RoomStore
	bookings  store.BookingStore
	api       *api.Client
	gateway   payment.Gateway
	roles     nav.RoleSource
	navigator *nav.Navigator
	notices   *notice.Center
	log       *zap.Logger

	mu       sync.Mutex
	step     Step
	room     *entity.Room
	checkIn  time.Time
	checkOut time.Time
	guests   int
	pricing  *entity.PricingBreakdown
	booking  *entity.Booking
}

func NewWizard(
	rooms store.RoomStore,
	bookings store.BookingStore,
	client *api.Client,
	gateway payment.Gateway,
	roles nav.RoleSource,
	navigator *nav.Navigator,
	notices *notice.Center,
	log *zap.Logger,
) *Wizard {
	return &Wizard{
		rooms:     rooms,
		bookings:  bookings,
		api:       client,
		gateway:   gateway,
		roles:     roles,
		navigator: navigator,
		notices:   notices,
		log:       log.With(zap.String("component", "wizard")),
	}
}

// SelectRoom is the wizard's entry gate: it demands a room id and an
// authenticated session. Without a room the caller lands back on the
// listing; without a session, on login with the booking page preserved
// as the destination. Selecting a room resets any earlier progress.
func (w *Wizard) SelectRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	if roomID == "" {
		w.log.Info("Booking entry without a room, returning to listing")
		w.navigator.Navigate(nav.RoomsPath)
		return nil, fmt.Errorf("no room selected")
	}

	if _, authenticated := w.roles.CurrentRole(); !authenticated {
		w.log.Info("Booking entry without a session, redirecting to login",
			zap.String("room_id", roomID))
		w.navigator.RedirectToLogin(nav.BookingPath)
		return nil, fmt.Errorf("please login to book a room")
	}

	room, err := w.rooms.GetRoomDetails(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != entity.RoomStatusActive {
		return nil, fmt.Errorf("room is not open for booking")
	}

	w.mu.Lock()
	w.step = StepRoomSelected
	w.room = room
	w.checkIn = time.Time{}
	w.checkOut = time.Time{}
	w.guests = 0
	w.pricing = nil
	w.booking = nil
	w.mu.Unlock()

	w.log.Info("Room selected", zap.String("room_id", room.ID), zap.String("name", room.Name))
	return room, nil
}

// ChooseDates validates the stay window, then resolves availability
// and pricing concurrently. An unavailable range leaves the wizard on
// the dates step so the customer can pick again.
func (w *Wizard) ChooseDates(ctx context.Context, checkIn, checkOut time.Time, guests int) (*entity.PricingBreakdown, error) {
	w.mu.Lock()
	room := w.room
	step := w.step
	w.mu.Unlock()

	if room == nil || step == "" {
		return nil, fmt.Errorf("select a room first")
	}

	// 1. Validate the window
	checkIn = utils.StartOfDay(checkIn)
	checkOut = utils.StartOfDay(checkOut)
	today := utils.StartOfDay(time.Now())

	if checkIn.Before(today) {
		return nil, fmt.Errorf("check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}
	if guests < 1 {
		return nil, fmt.Errorf("at least one guest is required")
	}
	if guests > room.Capacity {
		return nil, fmt.Errorf("room holds at most %d guests", room.Capacity)
	}

	w.mu.Lock()
	w.step = StepDatesChosen
	w.checkIn = checkIn
	w.checkOut = checkOut
	w.guests = guests
	w.pricing = nil
	w.mu.Unlock()

	// 2. Resolve availability and pricing together
	var (
		wg         sync.WaitGroup
		available  bool
		availErr   error
		pricing    *entity.PricingBreakdown
		pricingErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		available, availErr = w.rooms.CheckAvailability(ctx, room.ID, checkIn, checkOut)
	}()
	go func() {
		defer wg.Done()
		pricing, pricingErr = w.rooms.GetRoomPricing(ctx, room.ID, checkIn, checkOut)
	}()
	wg.Wait()

	if availErr != nil {
		return nil, availErr
	}
	if !available {
		w.log.Info("Dates unavailable",
			zap.String("room_id", room.ID),
			zap.String("check_in", utils.FormatDate(checkIn)),
			zap.String("check_out", utils.FormatDate(checkOut)))
		w.notices.Error("Room is not available for the selected dates")
		return nil, fmt.Errorf("room is not available for the selected dates")
	}
	if pricingErr != nil {
		return nil, pricingErr
	}

	w.mu.Lock()
	w.step = StepQuoteResolved
	w.pricing = pricing
	w.mu.Unlock()

	w.log.Info("Quote resolved",
		zap.String("room_id", room.ID),
		zap.Int("nights", utils.Nights(checkIn, checkOut)),
		zap.Float64("total", pricing.TotalAmount))
	return pricing, nil
}

// SubmitForm creates the booking order from the resolved quote. The
// terms gate runs before any network call.
func (w *Wizard) SubmitForm(ctx context.Context, specialRequests string, termsAccepted bool) (*entity.Booking, error) {
	w.mu.Lock()
	if w.step != StepQuoteResolved {
		w.mu.Unlock()
		return nil, fmt.Errorf("choose available dates first")
	}
	req := &request.CreateBookingRequest{
		RoomID:          w.room.ID,
		CheckInDate:     utils.FormatDate(w.checkIn),
		CheckOutDate:    utils.FormatDate(w.checkOut),
		NumberOfGuests:  w.guests,
		SpecialRequests: specialRequests,
		TotalAmount:     w.pricing.TotalAmount,
		TermsAccepted:   termsAccepted,
	}
	w.mu.Unlock()

	if !termsAccepted {
		return nil, fmt.Errorf("please accept the terms and conditions")
	}

	booking, err := w.bookings.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.step = StepFormSubmitted
	w.booking = booking
	w.mu.Unlock()

	w.log.Info("Booking order created",
		zap.String("booking_id", booking.BookingID),
		zap.Float64("total", booking.TotalAmount))
	return booking, nil
}

// Pay runs the checkout for the submitted booking: create the gateway
// order, open the hosted checkout, and verify the returned triple with
// the server. Only a server-verified payment confirms the wizard.
func (w *Wizard) Pay(ctx context.Context, prefill payment.Prefill) (*entity.Booking, error) {
	w.mu.Lock()
	if w.step != StepFormSubmitted && w.step != StepPaymentCancelled && w.step != StepPaymentFailed {
		w.mu.Unlock()
		return nil, fmt.Errorf("submit the booking form first")
	}
	booking := w.booking
	w.mu.Unlock()

	// 1. Wait for the checkout to be reachable
	if err := w.gateway.Ready(ctx); err != nil {
		w.notices.Error("Payment gateway failed to load. Please try again.")
		return nil, err
	}

	// 2. Create the payment order
	orderResp, err := w.api.Payments.CreateOrder(ctx, &request.CreatePaymentOrderRequest{
		BookingID: booking.ID,
		Amount:    booking.TotalAmount,
	})
	if err != nil {
		msg := api.Message(err, "Failed to initiate payment")
		w.notices.Error(msg)
		return nil, fmt.Errorf("%s", msg)
	}

	w.mu.Lock()
	w.step = StepPaymentInitiated
	w.mu.Unlock()

	// 3. Open the checkout
	outcome, err := w.gateway.Open(ctx, &payment.Order{
		OrderID:     orderResp.OrderID,
		Amount:      orderResp.Amount,
		Currency:    orderResp.Currency,
		BookingRef:  booking.BookingID,
		Description: fmt.Sprintf("Booking %s", booking.BookingID),
		Prefill:     prefill,
	})
	if err != nil {
		w.setStep(StepPaymentFailed)
		w.notices.Error("Payment could not be completed. Please try again.")
		return nil, err
	}

	switch {
	case outcome.Dismissed:
		// The customer closed the checkout; the order stays open for
		// another attempt.
		w.setStep(StepPaymentCancelled)
		w.notices.Warning("Payment cancelled")
		w.log.Info("Checkout dismissed", zap.String("booking_id", booking.BookingID))
		return nil, fmt.Errorf("payment cancelled")

	case outcome.Err != nil:
		w.setStep(StepPaymentFailed)
		w.notices.Error("Payment failed. Please try again.")
		w.log.Warn("Checkout failed",
			zap.String("booking_id", booking.BookingID),
			zap.Error(outcome.Err))
		return nil, outcome.Err
	}

	// 4. Verify the triple server-side
	verify, err := w.api.Payments.Verify(ctx, &request.VerifyPaymentRequest{
		RazorpayOrderID:   outcome.Result.OrderID,
		RazorpayPaymentID: outcome.Result.PaymentID,
		RazorpaySignature: outcome.Result.Signature,
	})
	if err != nil {
		w.setStep(StepPaymentFailed)
		msg := api.Message(err, "Payment verification failed")
		w.notices.Error(msg)
		return nil, fmt.Errorf("%s", msg)
	}
	if !verify.Verified {
		w.setStep(StepPaymentFailed)
		w.notices.Error("Payment verification failed")
		w.log.Warn("Signature rejected", zap.String("order_id", outcome.Result.OrderID))
		return nil, fmt.Errorf("payment verification failed")
	}

	// 5. Confirmed
	confirmed, err := w.bookings.GetBookingDetails(ctx, booking.ID)
	if err != nil {
		// Verification succeeded; the refreshed view is best effort.
		w.log.Warn("Failed to refresh booking after payment", zap.Error(err))
		confirmed = booking
	}

	w.mu.Lock()
	w.step = StepPaymentConfirmed
	w.booking = confirmed
	w.mu.Unlock()

	w.notices.Success("Payment successful! Your booking is confirmed.")
	w.log.Info("Payment confirmed",
		zap.String("booking_id", confirmed.BookingID),
		zap.String("payment_id", outcome.Result.PaymentID))
	return confirmed, nil
}

func (w *Wizard) setStep(step Step) {
	w.mu.Lock()
	w.step = step
	w.mu.Unlock()
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Booking() *entity.Booking {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booking
}

func (w *Wizard) Pricing() *entity.PricingBreakdown {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pricing
}

// Reset abandons the attempt. The server keeps any created order; the
// wizard just forgets it.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.step = ""
	w.room = nil
	w.checkIn = time.Time{}
	w.checkOut = time.Time{}
	w.guests = 0
	w.pricing = nil
	w.booking = nil
}
