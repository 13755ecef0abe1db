package api

import (
	"context"
	"fmt"
	"net/url"

	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
)

type RoomsAPI struct {
	client *Client
}

func (r *RoomsAPI) List(ctx context.Context) ([]response.RoomResponse, error) {
	var resp []response.RoomResponse
	if err := r.client.get(ctx, "/api/rooms", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *RoomsAPI) Get(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	var resp response.RoomResponse
	if err := r.client.get(ctx, fmt.Sprintf("/api/rooms/%s", roomID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *RoomsAPI) Availability(ctx context.Context, q *request.DateRangeQuery) (*response.AvailabilityResponse, error) {
	var resp response.AvailabilityResponse
	if err := r.client.get(ctx, "/api/rooms/availability", rangeQuery(q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *RoomsAPI) Pricing(ctx context.Context, q *request.DateRangeQuery) (*response.PricingResponse, error) {
	var resp response.PricingResponse
	if err := r.client.get(ctx, "/api/rooms/pricing", rangeQuery(q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Admin-only room management.

func (r *RoomsAPI) Create(ctx context.Context, req *request.SaveRoomRequest) (*response.RoomResponse, error) {
	var resp response.RoomResponse
	if err := r.client.post(ctx, "/api/rooms", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *RoomsAPI) Update(ctx context.Context, roomID string, req *request.SaveRoomRequest) (*response.RoomResponse, error) {
	var resp response.RoomResponse
	if err := r.client.put(ctx, fmt.Sprintf("/api/rooms/%s", roomID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *RoomsAPI) Delete(ctx context.Context, roomID string) error {
	return r.client.delete(ctx, fmt.Sprintf("/api/rooms/%s", roomID))
}

func rangeQuery(q *request.DateRangeQuery) url.Values {
	values := url.Values{}
	values.Set("roomId", q.RoomID)
	values.Set("startDate", q.StartDate)
	values.Set("endDate", q.EndDate)
	return values
}
