package api

import (
	"context"
	"fmt"
	"net/url"

	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
)

type AdminAPI struct {
	client *Client
}

// ==================== DASHBOARD ====================

func (a *AdminAPI) DashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	var resp response.DashboardStatsResponse
	if err := a.client.get(ctx, "/api/admin/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) RecentBookings(ctx context.Context) ([]response.RecentBookingResponse, error) {
	var resp []response.RecentBookingResponse
	if err := a.client.get(ctx, "/api/admin/dashboard/recent-bookings", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ==================== BOOKINGS ====================

func (a *AdminAPI) Bookings(ctx context.Context, status string) ([]response.BookingResponse, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}

	var resp []response.BookingResponse
	if err := a.client.get(ctx, "/api/admin/bookings", query, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *AdminAPI) CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.BookingResponse, error) {
	var resp response.BookingResponse
	if err := a.client.put(ctx, fmt.Sprintf("/api/admin/bookings/%s/cancel", bookingID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ==================== AVAILABILITY & PRICING ====================

func (a *AdminAPI) Availability(ctx context.Context, q *request.DateRangeQuery) ([]response.AvailabilityDayResponse, error) {
	var resp []response.AvailabilityDayResponse
	if err := a.client.get(ctx, "/api/admin/availability", rangeQuery(q), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *AdminAPI) BulkUpdateAvailability(ctx context.Context, req *request.AvailabilityBulkUpdateRequest) error {
	return a.client.post(ctx, "/api/admin/availability/bulk-update", req, nil)
}

func (a *AdminAPI) Pricing(ctx context.Context, q *request.DateRangeQuery) ([]response.PricingDayResponse, error) {
	var resp []response.PricingDayResponse
	if err := a.client.get(ctx, "/api/admin/pricing", rangeQuery(q), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *AdminAPI) BulkUpdatePricing(ctx context.Context, req *request.PricingBulkUpdateRequest) error {
	return a.client.post(ctx, "/api/admin/pricing/bulk-update", req, nil)
}

// ==================== USERS ====================

func (a *AdminAPI) Users(ctx context.Context) ([]response.UserResponse, error) {
	var resp []response.UserResponse
	if err := a.client.get(ctx, "/api/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *AdminAPI) CreateUser(ctx context.Context, req *request.SaveUserRequest) (*response.UserResponse, error) {
	var resp response.UserResponse
	if err := a.client.post(ctx, "/api/admin/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) UpdateUser(ctx context.Context, userID string, req *request.SaveUserRequest) (*response.UserResponse, error) {
	var resp response.UserResponse
	if err := a.client.put(ctx, fmt.Sprintf("/api/admin/users/%s", userID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) DeleteUser(ctx context.Context, userID string) error {
	return a.client.delete(ctx, fmt.Sprintf("/api/admin/users/%s", userID))
}

// ==================== EMPLOYEES ====================

func (a *AdminAPI) Employees(ctx context.Context) ([]response.EmployeeResponse, error) {
	var resp []response.EmployeeResponse
	if err := a.client.get(ctx, "/api/admin/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *AdminAPI) CreateEmployee(ctx context.Context, req *request.SaveEmployeeRequest) (*response.EmployeeResponse, error) {
	var resp response.EmployeeResponse
	if err := a.client.post(ctx, "/api/admin/employees", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) UpdateEmployee(ctx context.Context, employeeID string, req *request.SaveEmployeeRequest) (*response.EmployeeResponse, error) {
	var resp response.EmployeeResponse
	if err := a.client.put(ctx, fmt.Sprintf("/api/admin/employees/%s", employeeID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) DeleteEmployee(ctx context.Context, employeeID string) error {
	return a.client.delete(ctx, fmt.Sprintf("/api/admin/employees/%s", employeeID))
}

func (a *AdminAPI) ResetEmployeePassword(ctx context.Context, employeeID string) error {
	return a.client.post(ctx, fmt.Sprintf("/api/admin/employees/%s/reset-password", employeeID), nil, nil)
}

func (a *AdminAPI) ToggleEmployeeStatus(ctx context.Context, employeeID string) (*response.EmployeeResponse, error) {
	var resp response.EmployeeResponse
	if err := a.client.post(ctx, fmt.Sprintf("/api/admin/employees/%s/toggle-status", employeeID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
