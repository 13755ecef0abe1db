package response

import (
	"time"

	"homestay-client/internal/data/entity"
)

type UserResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Email       string           `json:"email"`
	FullName    string           `json:"fullName"`
	PhoneNumber string           `json:"phoneNumber,omitempty"`
	Role        string           `json:"role"`
	Address     *AddressResponse `json:"address,omitempty"`
	Enabled     bool             `json:"enabled"`
	LastLogin   string           `json:"lastLogin,omitempty"`
	CreatedAt   string           `json:"createdAt,omitempty"`
}

type AddressResponse struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Helper converters
func UserToEntity(u *UserResponse) *entity.User {
	role, err := entity.ParseRole(u.Role)
	if err != nil {
		role = entity.RoleUser
	}

	user := &entity.User{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Role:        role,
		Enabled:     u.Enabled,
		CreatedAt:   parseTimestamp(u.CreatedAt),
	}

	if u.Address != nil {
		user.Address = &entity.Address{
			Street:  u.Address.Street,
			City:    u.Address.City,
			State:   u.Address.State,
			Country: u.Address.Country,
			ZipCode: u.Address.ZipCode,
		}
	}

	if u.LastLogin != "" {
		t := parseTimestamp(u.LastLogin)
		user.LastLogin = &t
	}

	return user
}

// parseTimestamp accepts RFC3339 and the zone-less variant the backend
// emits for LocalDateTime fields. Zero time on anything else.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
