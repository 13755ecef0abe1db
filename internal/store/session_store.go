package store

import (
	"context"
	"fmt"
	"sync"

	"homestay-client/internal/api"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/dto/request"
	"homestay-client/internal/dto/response"
	"homestay-client/internal/nav"
	"homestay-client/pkg/keystore"
	"homestay-client/pkg/notice"
	"homestay-client/pkg/utils"

	"go.uber.org/zap"
)

// SessionState is a point-in-time snapshot of the session slice.
type SessionState struct {
	User    *entity.User
	Token   string
	Loading bool
	Err     string
}

func (s SessionState) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

type SessionStore interface {
	Login(ctx context.Context, username, password string) (*entity.User, error)
	Register(ctx context.Context, req *request.RegisterRequest) error
	Logout()
	CheckAuth(ctx context.Context)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.User, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error

	// CurrentRole implements nav.RoleSource.
	CurrentRole() (entity.Role, bool)
	Snapshot() SessionState
	HandleUnauthorized()
}

type sessionStore struct {
	api       *api.Client
	keys      *keystore.Keystore
	notices   *notice.Center
	navigator *nav.Navigator
	log       *zap.Logger

	mu    sync.Mutex
	state SessionState
}

func NewSessionStore(
	client *api.Client,
	keys *keystore.Keystore,
	notices *notice.Center,
	navigator *nav.Navigator,
	log *zap.Logger,
) SessionStore {
	return &sessionStore{
		api:       client,
		keys:      keys,
		notices:   notices,
		navigator: navigator,
		log:       log.With(zap.String("store", "session")),
	}
}

func (s *sessionStore) Login(ctx context.Context, username, password string) (*entity.User, error) {
	req := &request.LoginRequest{Username: username, Password: password}

	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.setLoading(true)

	// 2. Authenticate
	resp, err := s.api.Auth.Login(ctx, req)
	if err != nil {
		msg := api.Message(err, "Login failed")
		s.log.Warn("Login failed", zap.String("username", username), zap.Error(err))

		// A failed attempt never touches an existing session.
		s.mu.Lock()
		s.state.Loading = false
		s.state.Err = msg
		s.mu.Unlock()

		return nil, fmt.Errorf("%s", msg)
	}

	user := response.UserToEntity(&resp.User)

	// 3. Persist token and install the default auth header
	if err := s.keys.Save(resp.Token); err != nil {
		s.log.Warn("Failed to persist token", zap.Error(err))
		// Session continues in memory only
	}
	s.api.SetToken(resp.Token)

	s.mu.Lock()
	s.state = SessionState{User: user, Token: resp.Token}
	s.mu.Unlock()

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	// 4. Route by role
	s.navigator.NavigateAfterLogin(user.Role)

	return user, nil
}

// Register creates the account; the caller logs in separately.
func (s *sessionStore) Register(ctx context.Context, req *request.RegisterRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Auth.Register(ctx, req); err != nil {
		msg := api.Message(err, "Registration failed")
		s.log.Warn("Registration failed", zap.String("username", req.Username), zap.Error(err))
		return fmt.Errorf("%s", msg)
	}

	s.log.Info("User registered", zap.String("username", req.Username))
	return nil
}

// Logout clears durable and in-memory session state. Safe to call
// with no active session.
func (s *sessionStore) Logout() {
	if err := s.keys.Clear(); err != nil {
		s.log.Warn("Failed to clear stored token", zap.Error(err))
	}
	s.api.ClearToken()

	s.mu.Lock()
	s.state = SessionState{}
	s.mu.Unlock()

	s.log.Info("User logged out")

	s.navigator.Navigate(nav.LoginPath)
}

// CheckAuth runs once at startup: a stored token is attached and
// verified against the profile endpoint. This is the only place token
// validity is checked proactively; there is no refresh.
func (s *sessionStore) CheckAuth(ctx context.Context) {
	token, err := s.keys.Load()
	if err != nil {
		s.log.Warn("Failed to load stored token", zap.Error(err))
		return
	}
	if token == "" {
		return
	}

	s.api.SetToken(token)

	resp, err := s.api.Auth.Me(ctx)
	if err != nil {
		s.log.Warn("Stored token rejected", zap.Error(err))
		s.Logout()
		s.notices.Error("Session expired. Please login again.")
		return
	}

	user := response.UserToEntity(resp)

	s.mu.Lock()
	s.state = SessionState{User: user, Token: token}
	s.mu.Unlock()

	s.log.Info("Session restored",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
}

func (s *sessionStore) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp, err := s.api.Auth.UpdateProfile(ctx, req)
	if err != nil {
		msg := api.Message(err, "Failed to update profile")
		s.log.Warn("Profile update failed", zap.Error(err))
		return nil, fmt.Errorf("%s", msg)
	}

	user := response.UserToEntity(resp)

	s.mu.Lock()
	s.state.User = user
	s.mu.Unlock()

	s.notices.Success("Profile updated successfully")
	return user, nil
}

func (s *sessionStore) ResetPassword(ctx context.Context, email string) error {
	req := &request.PasswordResetRequest{Email: email}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Auth.RequestPasswordReset(ctx, req); err != nil {
		msg := api.Message(err, "Failed to request password reset")
		s.log.Warn("Password reset request failed", zap.Error(err))
		return fmt.Errorf("%s", msg)
	}

	s.notices.Success("Password reset instructions sent to your email")
	return nil
}

func (s *sessionStore) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	req := &request.ConfirmPasswordResetRequest{Token: token, NewPassword: newPassword}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Auth.ConfirmPasswordReset(ctx, req); err != nil {
		msg := api.Message(err, "Failed to reset password")
		s.log.Warn("Password reset failed", zap.Error(err))
		return fmt.Errorf("%s", msg)
	}

	s.notices.Success("Password reset successful. Please login with your new password.")
	return nil
}

func (s *sessionStore) CurrentRole() (entity.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Authenticated() {
		return "", false
	}
	return s.state.User.Role, true
}

func (s *sessionStore) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HandleUnauthorized is the API client's 401 hook: clear the session
// and land on login.
func (s *sessionStore) HandleUnauthorized() {
	s.Logout()
	s.notices.Error("Session expired. Please login again.")
}

func (s *sessionStore) setLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	if loading {
		s.state.Err = ""
	}
	s.mu.Unlock()
}
