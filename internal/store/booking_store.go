package store

import (
	"context"
	"fmt"
	"sync"

	"homestay-client/internal/api"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
	"homestay-client/pkg/utils"

	"go.uber.org/zap"
)

// BookingState is a point-in-time snapshot of the bookings slice.
type BookingState struct {
	Bookings []entity.Booking
	Selected *entity.Booking
	Loading  bool
	Err      string
}

type BookingStore interface {
	FetchBookings(ctx context.Context) ([]entity.Booking, error)
	GetBookingDetails(ctx context.Context, bookingID string) (*entity.Booking, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*entity.Booking, error)
	Snapshot() BookingState
}

type bookingStore struct {
	api *api.Client
	log *zap.Logger

	mu    sync.Mutex
	state BookingState
	gens  map[string]uint64
}

func NewBookingStore(client *api.Client, log *zap.Logger) BookingStore {
	return &bookingStore{
		api:  client,
		log:  log.With(zap.String("store", "booking")),
		gens: make(map[string]uint64),
	}
}

func (s *bookingStore) begin(op string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[op]++
	s.state.Loading = true
	s.state.Err = ""
	return s.gens[op]
}

func (s *bookingStore) stale(op string, gen uint64) bool {
	return s.gens[op] != gen
}

func (s *bookingStore) fail(op string, gen uint64, err error, fallback string) error {
	msg := api.Message(err, fallback)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		s.log.Debug("Dropping stale failure", zap.String("op", op), zap.Uint64("gen", gen))
		return fmt.Errorf("%s", msg)
	}

	// Failures surface an error but keep whatever data is already held.
	s.state.Loading = false
	s.state.Err = msg
	return fmt.Errorf("%s", msg)
}

func (s *bookingStore) FetchBookings(ctx context.Context) ([]entity.Booking, error) {
	const op = "bookings"
	gen := s.begin(op)

	resp, err := s.api.Bookings.List(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch bookings", zap.Error(err))
		return nil, s.fail(op, gen, err, "Failed to fetch bookings")
	}

	bookings := make([]entity.Booking, 0, len(resp))
	for i := range resp {
		bookings = append(bookings, *response.BookingToEntity(&resp[i]))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		s.log.Debug("Dropping stale response", zap.String("op", op), zap.Uint64("gen", gen))
		return bookings, nil
	}

	s.state.Bookings = bookings
	s.state.Loading = false
	s.state.Err = ""

	s.log.Info("Bookings fetched", zap.Int("count", len(bookings)))
	return bookings, nil
}

func (s *bookingStore) GetBookingDetails(ctx context.Context, bookingID string) (*entity.Booking, error) {
	const op = "booking"
	gen := s.begin(op)

	resp, err := s.api.Bookings.Get(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to fetch booking", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, s.fail(op, gen, err, "Failed to fetch booking details")
	}

	booking := response.BookingToEntity(resp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		return booking, nil
	}

	s.state.Selected = booking
	s.state.Loading = false
	s.state.Err = ""
	return booking, nil
}

// CreateBooking creates the server-side booking order. Validation runs
// before any network call; terms must already be accepted.
func (s *bookingStore) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	gen := s.begin("create")

	// 2. Create the order
	resp, err := s.api.Bookings.CreateOrder(ctx, req)
	if err != nil {
		s.log.Warn("Booking creation failed", zap.String("room_id", req.RoomID), zap.Error(err))
		return nil, s.fail("create", gen, err, "Failed to create booking")
	}

	booking := response.BookingToEntity(resp)

	// 3. Record the new booking
	s.mu.Lock()
	s.state.Bookings = append(s.state.Bookings, *booking)
	s.state.Selected = booking
	s.state.Loading = false
	s.state.Err = ""
	s.mu.Unlock()

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("room_id", booking.RoomID),
		zap.Float64("total", booking.TotalAmount))
	return booking, nil
}

func (s *bookingStore) CancelBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	gen := s.begin("cancel")

	resp, err := s.api.Bookings.RequestCancellation(ctx, bookingID)
	if err != nil {
		s.log.Warn("Cancellation request failed", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, s.fail("cancel", gen, err, "Failed to request cancellation")
	}

	booking := response.BookingToEntity(resp)

	s.mu.Lock()
	for i := range s.state.Bookings {
		if s.state.Bookings[i].ID == booking.ID {
			s.state.Bookings[i] = *booking
			break
		}
	}
	if s.state.Selected != nil && s.state.Selected.ID == booking.ID {
		s.state.Selected = booking
	}
	s.state.Loading = false
	s.state.Err = ""
	s.mu.Unlock()

	s.log.Info("Cancellation requested", zap.String("booking_id", bookingID))
	return booking, nil
}

func (s *bookingStore) Snapshot() BookingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}
