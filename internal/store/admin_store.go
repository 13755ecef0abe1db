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

// AdminState is a point-in-time snapshot of the admin slice. Dashboard
// figures stay in DTO form; they are display-only aggregates.
type AdminState struct {
	Stats          *response.DashboardStatsResponse
	RecentBookings []response.RecentBookingResponse
	Bookings       []entity.Booking
	Availability   []response.AvailabilityDayResponse
	Pricing        []response.PricingDayResponse
	Users          []entity.User
	Employees      []response.EmployeeResponse
	Loading        bool
	Err            string
}

type AdminStore interface {
	FetchDashboard(ctx context.Context) (*response.DashboardStatsResponse, error)
	FetchBookings(ctx context.Context, status string) ([]entity.Booking, error)
	CancelBooking(ctx context.Context, bookingID, reason string) (*entity.Booking, error)

	FetchAvailability(ctx context.Context, q *request.DateRangeQuery) ([]response.AvailabilityDayResponse, error)
	BulkUpdateAvailability(ctx context.Context, req *request.AvailabilityBulkUpdateRequest) error
	FetchPricing(ctx context.Context, q *request.DateRangeQuery) ([]response.PricingDayResponse, error)
	BulkUpdatePricing(ctx context.Context, req *request.PricingBulkUpdateRequest) error

	SaveRoom(ctx context.Context, roomID string, req *request.SaveRoomRequest) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error

	FetchUsers(ctx context.Context) ([]entity.User, error)
	SaveUser(ctx context.Context, userID string, req *request.SaveUserRequest) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error

	FetchEmployees(ctx context.Context) ([]response.EmployeeResponse, error)
	SaveEmployee(ctx context.Context, employeeID string, req *request.SaveEmployeeRequest) (*response.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	ResetEmployeePassword(ctx context.Context, employeeID string) error
	ToggleEmployeeStatus(ctx context.Context, employeeID string) (*response.EmployeeResponse, error)

	Snapshot() AdminState
}

type adminStore struct {
	api *api.Client
	log *zap.Logger

	mu    sync.Mutex
	state AdminState
}

func NewAdminStore(client *api.Client, log *zap.Logger) AdminStore {
	return &adminStore{
		api: client,
		log: log.With(zap.String("store", "admin")),
	}
}

func (s *adminStore) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *adminStore) fail(err error, fallback string) error {
	msg := api.Message(err, fallback)

	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = msg
	s.mu.Unlock()

	return fmt.Errorf("%s", msg)
}

func (s *adminStore) done(apply func(*AdminState)) {
	s.mu.Lock()
	apply(&s.state)
	s.state.Loading = false
	s.state.Err = ""
	s.mu.Unlock()
}

// ==================== DASHBOARD ====================

func (s *adminStore) FetchDashboard(ctx context.Context) (*response.DashboardStatsResponse, error) {
	s.begin()

	stats, err := s.api.Admin.DashboardStats(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch dashboard stats", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch dashboard stats")
	}

	recent, err := s.api.Admin.RecentBookings(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch recent bookings", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch recent bookings")
	}

	s.done(func(st *AdminState) {
		st.Stats = stats
		st.RecentBookings = recent
	})
	return stats, nil
}

// ==================== BOOKINGS ====================

func (s *adminStore) FetchBookings(ctx context.Context, status string) ([]entity.Booking, error) {
	s.begin()

	resp, err := s.api.Admin.Bookings(ctx, status)
	if err != nil {
		s.log.Warn("Failed to fetch admin bookings", zap.String("status", status), zap.Error(err))
		return nil, s.fail(err, "Failed to fetch bookings")
	}

	bookings := make([]entity.Booking, 0, len(resp))
	for i := range resp {
		bookings = append(bookings, *response.BookingToEntity(&resp[i]))
	}

	s.done(func(st *AdminState) { st.Bookings = bookings })
	return bookings, nil
}

func (s *adminStore) CancelBooking(ctx context.Context, bookingID, reason string) (*entity.Booking, error) {
	req := &request.CancelBookingRequest{Reason: reason}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp, err := s.api.Admin.CancelBooking(ctx, bookingID, req)
	if err != nil {
		s.log.Warn("Admin cancellation failed", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, s.fail(err, "Failed to cancel booking")
	}

	booking := response.BookingToEntity(resp)

	s.done(func(st *AdminState) {
		for i := range st.Bookings {
			if st.Bookings[i].ID == booking.ID {
				st.Bookings[i] = *booking
				break
			}
		}
	})

	s.log.Info("Booking cancelled by admin", zap.String("booking_id", bookingID))
	return booking, nil
}

// ==================== AVAILABILITY & PRICING ====================

func (s *adminStore) FetchAvailability(ctx context.Context, q *request.DateRangeQuery) ([]response.AvailabilityDayResponse, error) {
	if errs := utils.ValidateStruct(q); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.begin()

	resp, err := s.api.Admin.Availability(ctx, q)
	if err != nil {
		s.log.Warn("Failed to fetch availability grid", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch availability")
	}

	s.done(func(st *AdminState) { st.Availability = resp })
	return resp, nil
}

func (s *adminStore) BulkUpdateAvailability(ctx context.Context, req *request.AvailabilityBulkUpdateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Admin.BulkUpdateAvailability(ctx, req); err != nil {
		s.log.Warn("Bulk availability update failed", zap.Error(err))
		return s.fail(err, "Failed to update availability")
	}

	s.log.Info("Availability updated",
		zap.String("room_id", req.RoomID),
		zap.String("start", req.StartDate),
		zap.String("end", req.EndDate))
	return nil
}

func (s *adminStore) FetchPricing(ctx context.Context, q *request.DateRangeQuery) ([]response.PricingDayResponse, error) {
	if errs := utils.ValidateStruct(q); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.begin()

	resp, err := s.api.Admin.Pricing(ctx, q)
	if err != nil {
		s.log.Warn("Failed to fetch pricing grid", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch pricing")
	}

	s.done(func(st *AdminState) { st.Pricing = resp })
	return resp, nil
}

func (s *adminStore) BulkUpdatePricing(ctx context.Context, req *request.PricingBulkUpdateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Admin.BulkUpdatePricing(ctx, req); err != nil {
		s.log.Warn("Bulk pricing update failed", zap.Error(err))
		return s.fail(err, "Failed to update pricing")
	}

	s.log.Info("Pricing updated",
		zap.String("room_id", req.RoomID),
		zap.String("start", req.StartDate),
		zap.String("end", req.EndDate))
	return nil
}

// ==================== ROOMS ====================

// SaveRoom creates when roomID is empty, updates otherwise.
func (s *adminStore) SaveRoom(ctx context.Context, roomID string, req *request.SaveRoomRequest) (*entity.Room, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var (
		resp *response.RoomResponse
		err  error
	)
	if roomID == "" {
		resp, err = s.api.Rooms.Create(ctx, req)
	} else {
		resp, err = s.api.Rooms.Update(ctx, roomID, req)
	}
	if err != nil {
		s.log.Warn("Room save failed", zap.String("room_id", roomID), zap.Error(err))
		return nil, s.fail(err, "Failed to save room")
	}

	s.log.Info("Room saved", zap.String("room_id", resp.ID), zap.String("name", resp.Name))
	return response.RoomToEntity(resp), nil
}

func (s *adminStore) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.api.Rooms.Delete(ctx, roomID); err != nil {
		s.log.Warn("Room delete failed", zap.String("room_id", roomID), zap.Error(err))
		return s.fail(err, "Failed to delete room")
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

// ==================== USERS ====================

func (s *adminStore) FetchUsers(ctx context.Context) ([]entity.User, error) {
	s.begin()

	resp, err := s.api.Admin.Users(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch users", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch users")
	}

	users := make([]entity.User, 0, len(resp))
	for i := range resp {
		users = append(users, *response.UserToEntity(&resp[i]))
	}

	s.done(func(st *AdminState) { st.Users = users })
	return users, nil
}

// SaveUser creates when userID is empty, updates otherwise.
func (s *adminStore) SaveUser(ctx context.Context, userID string, req *request.SaveUserRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var (
		resp *response.UserResponse
		err  error
	)
	if userID == "" {
		resp, err = s.api.Admin.CreateUser(ctx, req)
	} else {
		resp, err = s.api.Admin.UpdateUser(ctx, userID, req)
	}
	if err != nil {
		s.log.Warn("User save failed", zap.String("user_id", userID), zap.Error(err))
		return nil, s.fail(err, "Failed to save user")
	}

	user := response.UserToEntity(resp)
	s.log.Info("User saved", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *adminStore) DeleteUser(ctx context.Context, userID string) error {
	if err := s.api.Admin.DeleteUser(ctx, userID); err != nil {
		s.log.Warn("User delete failed", zap.String("user_id", userID), zap.Error(err))
		return s.fail(err, "Failed to delete user")
	}

	s.done(func(st *AdminState) {
		for i := range st.Users {
			if st.Users[i].ID == userID {
				st.Users = append(st.Users[:i], st.Users[i+1:]...)
				break
			}
		}
	})

	s.log.Info("User deleted", zap.String("user_id", userID))
	return nil
}

// ==================== EMPLOYEES ====================

func (s *adminStore) FetchEmployees(ctx context.Context) ([]response.EmployeeResponse, error) {
	s.begin()

	resp, err := s.api.Admin.Employees(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch employees", zap.Error(err))
		return nil, s.fail(err, "Failed to fetch employees")
	}

	s.done(func(st *AdminState) { st.Employees = resp })
	return resp, nil
}

func (s *adminStore) SaveEmployee(ctx context.Context, employeeID string, req *request.SaveEmployeeRequest) (*response.EmployeeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var (
		resp *response.EmployeeResponse
		err  error
	)
	if employeeID == "" {
		resp, err = s.api.Admin.CreateEmployee(ctx, req)
	} else {
		resp, err = s.api.Admin.UpdateEmployee(ctx, employeeID, req)
	}
	if err != nil {
		s.log.Warn("Employee save failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, s.fail(err, "Failed to save employee")
	}

	s.log.Info("Employee saved", zap.String("employee_id", resp.ID), zap.String("role", resp.Role))
	return resp, nil
}

func (s *adminStore) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.api.Admin.DeleteEmployee(ctx, employeeID); err != nil {
		s.log.Warn("Employee delete failed", zap.String("employee_id", employeeID), zap.Error(err))
		return s.fail(err, "Failed to delete employee")
	}

	s.done(func(st *AdminState) {
		for i := range st.Employees {
			if st.Employees[i].ID == employeeID {
				st.Employees = append(st.Employees[:i], st.Employees[i+1:]...)
				break
			}
		}
	})

	s.log.Info("Employee deleted", zap.String("employee_id", employeeID))
	return nil
}

func (s *adminStore) ResetEmployeePassword(ctx context.Context, employeeID string) error {
	if err := s.api.Admin.ResetEmployeePassword(ctx, employeeID); err != nil {
		s.log.Warn("Employee password reset failed", zap.String("employee_id", employeeID), zap.Error(err))
		return s.fail(err, "Failed to reset employee password")
	}

	s.log.Info("Employee password reset", zap.String("employee_id", employeeID))
	return nil
}

func (s *adminStore) ToggleEmployeeStatus(ctx context.Context, employeeID string) (*response.EmployeeResponse, error) {
	resp, err := s.api.Admin.ToggleEmployeeStatus(ctx, employeeID)
	if err != nil {
		s.log.Warn("Employee status toggle failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, s.fail(err, "Failed to update employee status")
	}

	s.done(func(st *AdminState) {
		for i := range st.Employees {
			if st.Employees[i].ID == employeeID {
				st.Employees[i] = *resp
				break
			}
		}
	})

	s.log.Info("Employee status toggled",
		zap.String("employee_id", employeeID),
		zap.Bool("enabled", resp.Enabled))
	return resp, nil
}

func (s *adminStore) Snapshot() AdminState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}
