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

// ManagerState is a point-in-time snapshot of the operations slice.
type ManagerState struct {
	Booking       *entity.Booking
	RoomStatuses  []entity.RoomStatusRecord
	GuestRequests []entity.GuestRequest
	Dashboard     *response.ManagerDashboardResponse
	Loading       bool
	Err           string
}

type ManagerStore interface {
	FetchBooking(ctx context.Context, bookingID string) (*entity.Booking, error)
	ProcessCheckIn(ctx context.Context, bookingID string, req *request.CheckInRequest) (*entity.Booking, error)
	ProcessCheckOut(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*entity.Booking, error)
	FetchRoomStatuses(ctx context.Context) ([]entity.RoomStatusRecord, error)
	UpdateRoomStatus(ctx context.Context, roomID string, req *request.RoomStatusUpdateRequest) (*entity.RoomStatusRecord, error)
	FetchGuestRequests(ctx context.Context) ([]entity.GuestRequest, error)
	UpdateGuestRequest(ctx context.Context, requestID string, req *request.GuestRequestUpdateRequest) (*entity.GuestRequest, error)
	FetchDashboard(ctx context.Context) (*response.ManagerDashboardResponse, error)
	Snapshot() ManagerState
}

type managerStore struct {
	api *api.Client
	log *zap.Logger

	mu    sync.Mutex
	state ManagerState
}

func NewManagerStore(client *api.Client, log *zap.Logger) ManagerStore {
	return &managerStore{
		api: client,
		log: log.With(zap.String("store", "manager")),
	}
}

func (s *managerStore) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *managerStore) fail(err error, fallback string) error {
	msg := api.Message(err, fallback)

	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = msg
	s.mu.Unlock()

	return fmt.Errorf("%s", msg)
}

func (s *managerStore) done(apply func(*ManagerState)) {
	s.mu.Lock()
	apply(&s.state)
	s.state.Loading = false
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *managerStore) FetchBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	s.begin()

	resp, err := s.api.Manager.Booking(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to fetch booking", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, s.fail(err, "Failed to fetch booking")
	}

	booking := response.BookingToEntity(resp)
	s.done(func(st *ManagerState) { st.Booking = booking })
	return booking, nil
}

// ProcessCheckIn submits the guest's ID proof and room assignment. The
// booking must be CONFIRMED with payment PAID; the server enforces
// both, this check just fails fast with a readable message.
func (s *managerStore) ProcessCheckIn(ctx context.Context, bookingID string, req *request.CheckInRequest) (*entity.Booking, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.mu.Lock()
	current := s.state.Booking
	s.mu.Unlock()

	if current != nil && current.ID == bookingID {
		if current.Status != entity.BookingStatusConfirmed {
			return nil, fmt.Errorf("booking is not in a confirmed state")
		}
		if current.PaymentStatus != entity.PaymentStatusPaid {
			return nil, fmt.Errorf("booking payment is not completed")
		}
	}

	s.begin()

	// 2. Submit the check-in form
	resp, err := s.api.Manager.ProcessCheckIn(ctx, bookingID, req)
	if err != nil {
		s.log.Warn("Check-in failed", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, s.fail(err, "Failed to process check-in")
	}

	booking := response.BookingToEntity(resp)
	s.done(func(st *ManagerState) { st.Booking = booking })

	s.log.Info("Guest checked in",
		zap.String("booking_id", bookingID),
		zap.String("room", req.ActualRoomNumber))
	return booking, nil
}

func (s *managerStore) ProcessCheckOut(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-out validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.begin()

	resp, err := s.api.Manager.ProcessCheckOut(ctx, bookingID, req)
	if err != nil {
		s.log.Warn("Check-out failed", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, s.fail(err, "Failed to process check-out")
	}

	booking := response.BookingToEntity(resp)
	s.done(func(st *ManagerState) { st.Booking = booking })

	s.log.Info("Guest checked out",
		zap.String("booking_id", bookingID),
		zap.Bool("damages", req.DamagesReported))
	return booking, nil
}

func (s *managerStore) FetchRoomStatuses(ctx context.Context) ([]entity.RoomStatusRecord, error) {
	s.begin()

	resp, err := s.api.Manager.RoomStatuses(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch room statuses", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch room statuses")
	}

	records := make([]entity.RoomStatusRecord, 0, len(resp))
	for i := range resp {
		records = append(records, *response.RoomStatusToEntity(&resp[i]))
	}

	s.done(func(st *ManagerState) { st.RoomStatuses = records })
	return records, nil
}

func (s *managerStore) UpdateRoomStatus(ctx context.Context, roomID string, req *request.RoomStatusUpdateRequest) (*entity.RoomStatusRecord, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp, err := s.api.Manager.UpdateRoomStatus(ctx, roomID, req)
	if err != nil {
		s.log.Warn("Room status update failed", zap.String("room_id", roomID), zap.Error(err))
		return nil, s.fail(err, "Failed to update room status")
	}

	record := response.RoomStatusToEntity(resp)

	s.done(func(st *ManagerState) {
		for i := range st.RoomStatuses {
			if st.RoomStatuses[i].RoomID == record.RoomID {
				st.RoomStatuses[i] = *record
				return
			}
		}
		st.RoomStatuses = append(st.RoomStatuses, *record)
	})

	s.log.Info("Room status updated",
		zap.String("room_id", roomID),
		zap.String("status", record.Status))
	return record, nil
}

func (s *managerStore) FetchGuestRequests(ctx context.Context) ([]entity.GuestRequest, error) {
	s.begin()

	resp, err := s.api.Manager.GuestRequests(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch guest requests", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch guest requests")
	}

	requests := make([]entity.GuestRequest, 0, len(resp))
	for i := range resp {
		requests = append(requests, *response.GuestRequestToEntity(&resp[i]))
	}

	s.done(func(st *ManagerState) { st.GuestRequests = requests })
	return requests, nil
}

func (s *managerStore) UpdateGuestRequest(ctx context.Context, requestID string, req *request.GuestRequestUpdateRequest) (*entity.GuestRequest, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp, err := s.api.Manager.UpdateGuestRequest(ctx, requestID, req)
	if err != nil {
		s.log.Warn("Guest request update failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, s.fail(err, "Failed to update guest request")
	}

	updated := response.GuestRequestToEntity(resp)

	s.done(func(st *ManagerState) {
		for i := range st.GuestRequests {
			if st.GuestRequests[i].ID == updated.ID {
				st.GuestRequests[i] = *updated
				break
			}
		}
	})

	s.log.Info("Guest request updated",
		zap.String("request_id", requestID),
		zap.String("status", updated.Status))
	return updated, nil
}

func (s *managerStore) FetchDashboard(ctx context.Context) (*response.ManagerDashboardResponse, error) {
	s.begin()

	resp, err := s.api.Manager.Dashboard(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch manager dashboard", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch dashboard")
	}

	s.done(func(st *ManagerState) { st.Dashboard = resp })
	return resp, nil
}

func (s *managerStore) Snapshot() ManagerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}
