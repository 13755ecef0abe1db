package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"homestay-client/internal/api"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/dto/request"
	"homestay-client/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingStore(t *testing.T, handler http.Handler) BookingStore {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := &utils.Config{
		API: utils.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5},
	}
	return NewBookingStore(api.NewClient(config, zap.NewNop()), zap.NewNop())
}

func bookingPayload(id, status string) map[string]any {
	return map[string]any{
		"id": id, "bookingId": "BK-" + id, "roomId": "r1",
		"checkInDate": "2026-09-10", "checkOutDate": "2026-09-12",
		"totalAmount": 5000.0, "status": status, "paymentStatus": "PAID",
		"guestDetails": map[string]any{
			"name": "Sreekar", "email": "s@example.com",
			"phone": "999", "numberOfGuests": 2,
		},
	}
}

func TestCreateBookingValidatesBeforeNetwork(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/bookings/create-order", func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(bookingPayload("b1", "CONFIRMED"))
	})

	s := newBookingStore(t, mux)

	_, err := s.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:         "r1",
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 2,
		TotalAmount:    5000,
		TermsAccepted:  false,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.False(t, called, "an invalid form never reaches the server")
}

func TestCreateBookingRecordsResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/bookings/create-order", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bookingPayload("b1", "CONFIRMED"))
	})

	s := newBookingStore(t, mux)

	booking, err := s.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:         "r1",
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 2,
		TotalAmount:    5000,
		TermsAccepted:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "BK-b1", booking.BookingID)

	state := s.Snapshot()
	require.Len(t, state.Bookings, 1)
	assert.Equal(t, booking, state.Selected)
}

func TestCancelBookingUpdatesHeldCopy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{bookingPayload("b1", "CONFIRMED")})
	})
	mux.HandleFunc("POST /api/bookings/b1/request-cancellation", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bookingPayload("b1", "CANCELLED"))
	})

	s := newBookingStore(t, mux)

	_, err := s.FetchBookings(context.Background())
	require.NoError(t, err)

	cancelled, err := s.CancelBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	state := s.Snapshot()
	require.Len(t, state.Bookings, 1)
	assert.Equal(t, entity.BookingStatusCancelled, state.Bookings[0].Status)
}

func TestStaleBookingsFailureDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "upstream timeout"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{bookingPayload("b1", "CONFIRMED")})
	})

	s := newBookingStore(t, mux)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		s.FetchBookings(context.Background())
	}()

	<-entered

	_, err := s.FetchBookings(context.Background())
	require.NoError(t, err)

	close(release)
	<-firstDone

	state := s.Snapshot()
	assert.Empty(t, state.Err, "a superseded failure must not clobber the newer request's state")
	assert.False(t, state.Loading)
	assert.Len(t, state.Bookings, 1)
}

func TestFetchBookingsFailureSurfacesMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "access denied"})
	})

	s := newBookingStore(t, mux)

	_, err := s.FetchBookings(context.Background())
	require.Error(t, err)
	assert.Equal(t, "access denied", err.Error())
	assert.Equal(t, "access denied", s.Snapshot().Err)
}
