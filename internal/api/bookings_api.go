package api

import (
	"context"
	"fmt"

	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
)

type BookingsAPI struct {
	client *Client
}

func (b *BookingsAPI) List(ctx context.Context) ([]response.BookingResponse, error) {
	var resp []response.BookingResponse
	if err := b.client.get(ctx, "/api/bookings", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (b *BookingsAPI) Get(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	var resp response.BookingResponse
	if err := b.client.get(ctx, fmt.Sprintf("/api/bookings/%s", bookingID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *BookingsAPI) CreateOrder(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	var resp response.BookingResponse
	if err := b.client.post(ctx, "/api/bookings/create-order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *BookingsAPI) RequestCancellation(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	var resp response.BookingResponse
	if err := b.client.post(ctx, fmt.Sprintf("/api/bookings/%s/request-cancellation", bookingID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
