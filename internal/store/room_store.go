package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homestay-client/internal/api"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
	"homestay-client/pkg/utils"

	"go.uber.org/zap"
)

// RoomState is a point-in-time snapshot of the rooms slice.
// Availability and Pricing belong to the last queried date range and
// are replaced wholesale on every new query.
type RoomState struct {
	Rooms        []entity.Room
	SelectedRoom *entity.Room
	Availability []entity.AvailabilityWindow
	Available    bool
	Pricing      *entity.PricingBreakdown
	Loading      bool
	Err          string
}

type RoomStore interface {
	FetchRooms(ctx context.Context) ([]entity.Room, error)
	GetRoomDetails(ctx context.Context, roomID string) (*entity.Room, error)
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	GetRoomPricing(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*entity.PricingBreakdown, error)
	Snapshot() RoomState
}

type roomStore struct {
	api *api.Client
	log *zap.Logger

	mu    sync.Mutex
	state RoomState
	gens  map[string]uint64
}

func NewRoomStore(client *api.Client, log *zap.Logger) RoomStore {
	return &roomStore{
		api:  client,
		log:  log.With(zap.String("store", "room")),
		gens: make(map[string]uint64),
	}
}

// begin opens a new request generation for op. Any response carrying
// an older generation is discarded on arrival, so a rapid sequence of
// queries settles on the newest one.
func (s *roomStore) begin(op string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[op]++
	s.state.Loading = true
	s.state.Err = ""
	return s.gens[op]
}

func (s *roomStore) stale(op string, gen uint64) bool {
	return s.gens[op] != gen
}

func (s *roomStore) fail(op string, gen uint64, err error, fallback string) error {
	msg := api.Message(err, fallback)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		s.log.Debug("Dropping stale response", zap.String("op", op), zap.Uint64("gen", gen))
		return fmt.Errorf("%s", msg)
	}

	// Failures surface an error but keep whatever data is already held.
	s.state.Loading = false
	s.state.Err = msg
	return fmt.Errorf("%s", msg)
}

func (s *roomStore) FetchRooms(ctx context.Context) ([]entity.Room, error) {
	const op = "rooms"
	gen := s.begin(op)

	resp, err := s.api.Rooms.List(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch rooms", zap.Error(err))
		return nil, s.fail(op, gen, err, "Failed to fetch rooms")
	}

	rooms := make([]entity.Room, 0, len(resp))
	for i := range resp {
		rooms = append(rooms, *response.RoomToEntity(&resp[i]))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		s.log.Debug("Dropping stale response", zap.String("op", op), zap.Uint64("gen", gen))
		return rooms, nil
	}

	s.state.Rooms = rooms
	s.state.Loading = false
	s.state.Err = ""

	s.log.Info("Rooms fetched", zap.Int("count", len(rooms)))
	return rooms, nil
}

func (s *roomStore) GetRoomDetails(ctx context.Context, roomID string) (*entity.Room, error) {
	const op = "room"
	gen := s.begin(op)

	resp, err := s.api.Rooms.Get(ctx, roomID)
	if err != nil {
		s.log.Warn("Failed to fetch room", zap.String("room_id", roomID), zap.Error(err))
		return nil, s.fail(op, gen, err, "Failed to fetch room details")
	}

	room := response.RoomToEntity(resp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		return room, nil
	}

	s.state.SelectedRoom = room
	s.state.Loading = false
	s.state.Err = ""
	return room, nil
}

func (s *roomStore) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	q := &request.DateRangeQuery{
		RoomID:    roomID,
		StartDate: utils.FormatDate(checkIn),
		EndDate:   utils.FormatDate(checkOut),
	}
	if errs := utils.ValidateStruct(q); len(errs) > 0 {
		return false, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	const op = "availability"
	gen := s.begin(op)

	resp, err := s.api.Rooms.Availability(ctx, q)
	if err != nil {
		s.log.Warn("Availability check failed", zap.String("room_id", roomID), zap.Error(err))
		return false, s.fail(op, gen, err, "Failed to check availability")
	}

	windows := response.AvailabilityToEntity(resp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		s.log.Debug("Dropping stale response", zap.String("op", op), zap.Uint64("gen", gen))
		return resp.Available, nil
	}

	s.state.Availability = windows
	s.state.Available = resp.Available
	s.state.Loading = false
	s.state.Err = ""

	s.log.Info("Availability checked",
		zap.String("room_id", roomID),
		zap.String("start", q.StartDate),
		zap.String("end", q.EndDate),
		zap.Bool("available", resp.Available))
	return resp.Available, nil
}

func (s *roomStore) GetRoomPricing(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*entity.PricingBreakdown, error) {
	q := &request.DateRangeQuery{
		RoomID:    roomID,
		StartDate: utils.FormatDate(checkIn),
		EndDate:   utils.FormatDate(checkOut),
	}
	if errs := utils.ValidateStruct(q); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	const op = "pricing"
	gen := s.begin(op)

	resp, err := s.api.Rooms.Pricing(ctx, q)
	if err != nil {
		s.log.Warn("Pricing fetch failed", zap.String("room_id", roomID), zap.Error(err))
		return nil, s.fail(op, gen, err, "Failed to fetch pricing")
	}

	pricing := response.PricingToEntity(resp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(op, gen) {
		s.log.Debug("Dropping stale response", zap.String("op", op), zap.Uint64("gen", gen))
		return pricing, nil
	}

	s.state.Pricing = pricing
	s.state.Loading = false
	s.state.Err = ""

	s.log.Info("Pricing fetched",
		zap.String("room_id", roomID),
		zap.Float64("total", pricing.TotalAmount))
	return pricing, nil
}

func (s *roomStore) Snapshot() RoomState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}
