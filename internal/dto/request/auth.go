package request

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
}

type UpdateProfileRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,min=10,max=15"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmPasswordResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
