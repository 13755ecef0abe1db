package request

type PricingBulkUpdateRequest struct {
	RoomID    string  `json:"roomId" validate:"required"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	Price     float64 `json:"price" validate:"required,min=0"`
	Reason    string  `json:"reason" validate:"required"`
}

type AvailabilityBulkUpdateRequest struct {
	RoomID      string `json:"roomId" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type SaveUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role" validate:"required,oneof=ADMIN MANAGER EMPLOYEE USER"`
}

type SaveEmployeeRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role" validate:"required,oneof=MANAGER EMPLOYEE"`
}
