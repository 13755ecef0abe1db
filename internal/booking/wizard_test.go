package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"homestay-client/internal/api"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/nav"
	"homestay-client/internal/payment"
	"homestay-client/internal/store"
	"homestay-client/pkg/notice"
	"homestay-client/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGateway scripts the checkout outcome so the flow can be driven
// without a live provider.
type fakeGateway struct {
	readyErr error
	outcome  *payment.Outcome
	opened   atomic.Int32
}

func (g *fakeGateway) Ready(ctx context.Context) error { return g.readyErr }

func (g *fakeGateway) Open(ctx context.Context, order *payment.Order) (*payment.Outcome, error) {
	g.opened.Add(1)
	return g.outcome, nil
}

// stubRoles plays the session's role source. Authenticated customer
// by default.
type stubRoles struct {
	role entity.Role
	ok   bool
}

func (s *stubRoles) CurrentRole() (entity.Role, bool) { return s.role, s.ok }

type wizardFixture struct {
	wizard    *Wizard
	gateway   *fakeGateway
	notices   *notice.Center
	roles     *stubRoles
	navigator *nav.Navigator

	available     atomic.Bool
	roomFetches   atomic.Int32
	bookingCalls  atomic.Int32
	verifyCalls   atomic.Int32
	verifiedReply atomic.Bool
}

func newWizardFixture(t *testing.T) *wizardFixture {
	t.Helper()

	f := &wizardFixture{
		gateway: &fakeGateway{},
		notices: notice.NewCenter(time.Minute),
		roles:   &stubRoles{role: entity.RoleUser, ok: true},
	}
	f.navigator = nav.NewNavigator(f.roles, zap.NewNop())
	f.available.Store(true)
	f.verifiedReply.Store(true)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms/r1", func(w http.ResponseWriter, r *http.Request) {
		f.roomFetches.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "r1", "name": "Garden View", "roomType": "DELUXE",
			"basePrice": 2500.0, "capacity": 4, "status": "ACTIVE",
		})
	})
	mux.HandleFunc("GET /api/rooms/availability", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"available": f.available.Load()})
	})
	mux.HandleFunc("GET /api/rooms/pricing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"totalAmount": 5000.0,
			"breakdown": []map[string]any{
				{"date": r.URL.Query().Get("startDate"), "price": 2500.0},
			},
		})
	})
	mux.HandleFunc("POST /api/bookings/create-order", func(w http.ResponseWriter, r *http.Request) {
		f.bookingCalls.Add(1)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["termsAccepted"])

		json.NewEncoder(w).Encode(map[string]any{
			"id": "b1", "bookingId": "BK-1", "roomId": "r1",
			"checkInDate": body["checkInDate"], "checkOutDate": body["checkOutDate"],
			"totalAmount": 5000.0, "status": "CONFIRMED", "paymentStatus": "PENDING",
			"guestDetails": map[string]any{
				"name": "Sreekar", "email": "s@example.com",
				"phone": "999", "numberOfGuests": 2,
			},
		})
	})
	mux.HandleFunc("POST /api/payments/create-order", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"orderId": "order_1", "amount": 5000.0, "currency": "INR",
		})
	})
	mux.HandleFunc("POST /api/payments/verify", func(w http.ResponseWriter, r *http.Request) {
		f.verifyCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"verified": f.verifiedReply.Load()})
	})
	mux.HandleFunc("GET /api/bookings/b1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": "b1", "bookingId": "BK-1", "roomId": "r1",
			"checkInDate": "2026-09-10", "checkOutDate": "2026-09-12",
			"totalAmount": 5000.0, "status": "CONFIRMED", "paymentStatus": "PAID",
			"guestDetails": map[string]any{
				"name": "Sreekar", "email": "s@example.com",
				"phone": "999", "numberOfGuests": 2,
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	config := &utils.Config{
		API: utils.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5},
	}
	client := api.NewClient(config, zap.NewNop())

	rooms := store.NewRoomStore(client, zap.NewNop())
	bookings := store.NewBookingStore(client, zap.NewNop())

	f.wizard = NewWizard(rooms, bookings, client, f.gateway, f.roles, f.navigator, f.notices, zap.NewNop())
	return f
}

func stayWindow() (time.Time, time.Time) {
	checkIn := time.Now().AddDate(0, 0, 7)
	return checkIn, checkIn.AddDate(0, 0, 2)
}

// advance drives the wizard up to the submitted form.
func (f *wizardFixture) advance(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	_, err := f.wizard.SelectRoom(ctx, "r1")
	require.NoError(t, err)

	checkIn, checkOut := stayWindow()
	_, err = f.wizard.ChooseDates(ctx, checkIn, checkOut, 2)
	require.NoError(t, err)

	_, err = f.wizard.SubmitForm(ctx, "", true)
	require.NoError(t, err)
	require.Equal(t, StepFormSubmitted, f.wizard.Step())
}

func TestEntryWithoutRoomReturnsToListing(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.wizard.SelectRoom(context.Background(), "")
	require.Error(t, err)

	assert.Equal(t, nav.RoomsPath, f.navigator.Current())
	assert.Zero(t, f.roomFetches.Load())
	assert.Empty(t, f.wizard.Step())
}

func TestEntryUnauthenticatedRedirectsToLogin(t *testing.T) {
	f := newWizardFixture(t)
	f.roles.ok = false

	_, err := f.wizard.SelectRoom(context.Background(), "r1")
	require.Error(t, err)

	assert.Equal(t, nav.LoginPath, f.navigator.Current())
	assert.Zero(t, f.roomFetches.Load(), "the gate runs before any fetch")

	// The intended destination survives the redirect
	assert.Equal(t, nav.BookingPath, f.navigator.ConsumePending())
}

func TestEntryAfterLoginProceeds(t *testing.T) {
	f := newWizardFixture(t)
	f.roles.ok = false

	_, err := f.wizard.SelectRoom(context.Background(), "r1")
	require.Error(t, err)

	f.roles.ok = true

	room, err := f.wizard.SelectRoom(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Garden View", room.Name)
	assert.Equal(t, StepRoomSelected, f.wizard.Step())
}

func TestChooseDatesRejectsInvertedRange(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.SelectRoom(ctx, "r1")
	require.NoError(t, err)

	checkIn, _ := stayWindow()

	_, err = f.wizard.ChooseDates(ctx, checkIn, checkIn, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check-out date must be after check-in date")
	assert.Equal(t, StepRoomSelected, f.wizard.Step())

	_, err = f.wizard.ChooseDates(ctx, checkIn, checkIn.AddDate(0, 0, -1), 2)
	require.Error(t, err)
	assert.Equal(t, StepRoomSelected, f.wizard.Step())
}

func TestChooseDatesRejectsTooManyGuests(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.SelectRoom(ctx, "r1")
	require.NoError(t, err)

	checkIn, checkOut := stayWindow()
	_, err = f.wizard.ChooseDates(ctx, checkIn, checkOut, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room holds at most 4 guests")
}

func TestUnavailableDatesStayOnDatesStep(t *testing.T) {
	f := newWizardFixture(t)
	f.available.Store(false)
	ctx := context.Background()

	_, err := f.wizard.SelectRoom(ctx, "r1")
	require.NoError(t, err)

	checkIn, checkOut := stayWindow()
	_, err = f.wizard.ChooseDates(ctx, checkIn, checkOut, 2)
	require.Error(t, err)
	assert.Equal(t, "room is not available for the selected dates", err.Error())
	assert.Equal(t, StepDatesChosen, f.wizard.Step())
	assert.Nil(t, f.wizard.Pricing())

	current := f.notices.Current()
	require.NotNil(t, current)
	assert.Equal(t, notice.SeverityError, current.Severity)
}

func TestQuoteResolvedOnAvailableDates(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.SelectRoom(ctx, "r1")
	require.NoError(t, err)

	checkIn, checkOut := stayWindow()
	pricing, err := f.wizard.ChooseDates(ctx, checkIn, checkOut, 2)
	require.NoError(t, err)

	assert.Equal(t, StepQuoteResolved, f.wizard.Step())
	assert.Equal(t, 5000.0, pricing.TotalAmount)
}

func TestSubmitBlockedWithoutTerms(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.SelectRoom(ctx, "r1")
	require.NoError(t, err)

	checkIn, checkOut := stayWindow()
	_, err = f.wizard.ChooseDates(ctx, checkIn, checkOut, 2)
	require.NoError(t, err)

	_, err = f.wizard.SubmitForm(ctx, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terms")
	assert.Zero(t, f.bookingCalls.Load(), "no order may be created before the terms gate")
	assert.Equal(t, StepQuoteResolved, f.wizard.Step())
}

func TestSubmitRequiresResolvedQuote(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.wizard.SubmitForm(context.Background(), "", true)
	require.Error(t, err)
	assert.Zero(t, f.bookingCalls.Load())
}

func TestDismissedCheckoutCancelsWithoutConfirming(t *testing.T) {
	f := newWizardFixture(t)
	f.gateway.outcome = &payment.Outcome{Dismissed: true}
	f.advance(t)

	_, err := f.wizard.Pay(context.Background(), payment.Prefill{})
	require.Error(t, err)
	assert.Equal(t, "payment cancelled", err.Error())
	assert.Equal(t, StepPaymentCancelled, f.wizard.Step())
	assert.Zero(t, f.verifyCalls.Load(), "a dismissed checkout has nothing to verify")

	current := f.notices.Current()
	require.NotNil(t, current)
	assert.Equal(t, notice.SeverityWarning, current.Severity)
	assert.Equal(t, "Payment cancelled", current.Message)
}

func TestDismissedCheckoutAllowsRetry(t *testing.T) {
	f := newWizardFixture(t)
	f.gateway.outcome = &payment.Outcome{Dismissed: true}
	f.advance(t)

	_, err := f.wizard.Pay(context.Background(), payment.Prefill{})
	require.Error(t, err)

	f.gateway.outcome = &payment.Outcome{
		Result: &payment.Result{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
	}

	booking, err := f.wizard.Pay(context.Background(), payment.Prefill{})
	require.NoError(t, err)
	assert.Equal(t, StepPaymentConfirmed, f.wizard.Step())
	assert.Equal(t, "BK-1", booking.BookingID)
}

func TestVerifiedPaymentConfirms(t *testing.T) {
	f := newWizardFixture(t)
	f.gateway.outcome = &payment.Outcome{
		Result: &payment.Result{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
	}
	f.advance(t)

	booking, err := f.wizard.Pay(context.Background(), payment.Prefill{Name: "Sreekar"})
	require.NoError(t, err)

	assert.Equal(t, StepPaymentConfirmed, f.wizard.Step())
	assert.Equal(t, int32(1), f.verifyCalls.Load())
	assert.Equal(t, "PAID", string(booking.PaymentStatus))

	current := f.notices.Current()
	require.NotNil(t, current)
	assert.Equal(t, notice.SeveritySuccess, current.Severity)
}

func TestRejectedSignatureFailsPayment(t *testing.T) {
	f := newWizardFixture(t)
	f.verifiedReply.Store(false)
	f.gateway.outcome = &payment.Outcome{
		Result: &payment.Result{OrderID: "order_1", PaymentID: "pay_1", Signature: "bad"},
	}
	f.advance(t)

	_, err := f.wizard.Pay(context.Background(), payment.Prefill{})
	require.Error(t, err)
	assert.Equal(t, "payment verification failed", err.Error())
	assert.Equal(t, StepPaymentFailed, f.wizard.Step())
}

func TestGatewayNotReadyBlocksPayment(t *testing.T) {
	f := newWizardFixture(t)
	f.gateway.readyErr = context.DeadlineExceeded
	f.advance(t)

	_, err := f.wizard.Pay(context.Background(), payment.Prefill{})
	require.Error(t, err)
	assert.Zero(t, f.gateway.opened.Load())
	assert.Equal(t, StepFormSubmitted, f.wizard.Step())
}

func TestPayRequiresSubmittedForm(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.wizard.Pay(context.Background(), payment.Prefill{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit the booking form first")
}
