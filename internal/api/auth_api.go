package api

import (
	"context"

	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
)

type AuthAPI struct {
	client *Client
}

func (a *AuthAPI) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	var resp response.AuthResponse
	if err := a.client.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates the account only; it does not authenticate.
func (a *AuthAPI) Register(ctx context.Context, req *request.RegisterRequest) error {
	return a.client.post(ctx, "/api/auth/register", req, nil)
}

func (a *AuthAPI) Me(ctx context.Context) (*response.UserResponse, error) {
	var resp response.UserResponse
	if err := a.client.get(ctx, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	var resp response.UserResponse
	if err := a.client.put(ctx, "/api/auth/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) RequestPasswordReset(ctx context.Context, req *request.PasswordResetRequest) error {
	return a.client.post(ctx, "/api/auth/password-reset", req, nil)
}

func (a *AuthAPI) ConfirmPasswordReset(ctx context.Context, req *request.ConfirmPasswordResetRequest) error {
	return a.client.put(ctx, "/api/auth/password-reset", req, nil)
}
