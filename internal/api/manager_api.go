package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
)

type ManagerAPI struct {
	client *Client
}

func (m *ManagerAPI) Booking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	var resp response.BookingResponse
	if err := m.client.get(ctx, fmt.Sprintf("/api/manager/bookings/%s", bookingID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessCheckIn submits the check-in form as multipart form data, the
// ID proof image included.
func (m *ManagerAPI) ProcessCheckIn(ctx context.Context, bookingID string, req *request.CheckInRequest) (*response.BookingResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"idProofType":             req.IDProofType,
		"idProofNumber":           req.IDProofNumber,
		"actualRoomNumber":        req.ActualRoomNumber,
		"additionalCharges":       strconv.FormatFloat(req.AdditionalCharges, 'f', 2, 64),
		"additionalChargesReason": req.AdditionalChargesReason,
		"additionalNotes":         req.AdditionalNotes,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	part, err := writer.CreateFormFile("idProofImage", req.IDProofImageName)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, req.IDProofImage); err != nil {
		return nil, fmt.Errorf("copy id proof: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/manager/process-checkin/%s", m.client.baseURL, bookingID), &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var resp response.BookingResponse
	if err := m.client.send(httpReq, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (m *ManagerAPI) ProcessCheckOut(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*response.BookingResponse, error) {
	var resp response.BookingResponse
	if err := m.client.post(ctx, fmt.Sprintf("/api/manager/process-checkout/%s", bookingID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (m *ManagerAPI) RoomStatuses(ctx context.Context) ([]response.RoomStatusResponse, error) {
	var resp []response.RoomStatusResponse
	if err := m.client.get(ctx, "/api/manager/room-status", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *ManagerAPI) UpdateRoomStatus(ctx context.Context, roomID string, req *request.RoomStatusUpdateRequest) (*response.RoomStatusResponse, error) {
	var resp response.RoomStatusResponse
	if err := m.client.put(ctx, fmt.Sprintf("/api/manager/room-status/%s", roomID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (m *ManagerAPI) GuestRequests(ctx context.Context) ([]response.GuestRequestResponse, error) {
	var resp []response.GuestRequestResponse
	if err := m.client.get(ctx, "/api/manager/guest-requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *ManagerAPI) UpdateGuestRequest(ctx context.Context, requestID string, req *request.GuestRequestUpdateRequest) (*response.GuestRequestResponse, error) {
	var resp response.GuestRequestResponse
	if err := m.client.put(ctx, fmt.Sprintf("/api/manager/guest-requests/%s", requestID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (m *ManagerAPI) Dashboard(ctx context.Context) (*response.ManagerDashboardResponse, error) {
	var resp response.ManagerDashboardResponse
	if err := m.client.get(ctx, "/api/manager/dashboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
