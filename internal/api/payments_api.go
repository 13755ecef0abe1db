package api

import (
	"context"
	"fmt"

	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
)

type PaymentsAPI struct {
	client *Client
}

func (p *PaymentsAPI) CreateOrder(ctx context.Context, req *request.CreatePaymentOrderRequest) (*response.PaymentOrderResponse, error) {
	var resp response.PaymentOrderResponse
	if err := p.client.post(ctx, "/api/payments/create-order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify posts the checkout result triple. Only a verified response
// marks the payment as confirmed.
func (p *PaymentsAPI) Verify(ctx context.Context, req *request.VerifyPaymentRequest) (*response.PaymentVerifyResponse, error) {
	var resp response.PaymentVerifyResponse
	if err := p.client.post(ctx, "/api/payments/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *PaymentsAPI) Refund(ctx context.Context, req *request.RefundRequest) (*response.RefundResponse, error) {
	var resp response.RefundResponse
	if err := p.client.post(ctx, "/api/payments/refund", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *PaymentsAPI) Status(ctx context.Context, paymentID string) (*response.PaymentStatusResponse, error) {
	var resp response.PaymentStatusResponse
	if err := p.client.get(ctx, fmt.Sprintf("/api/payments/status/%s", paymentID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
