package response

type DashboardStatsResponse struct {
	TotalBookings   int     `json:"totalBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	OccupancyRate   float64 `json:"occupancyRate"`
	PendingRequests int     `json:"pendingRequests"`
}

type RecentBookingResponse struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"bookingId"`
	GuestName    string  `json:"guestName"`
	RoomName     string  `json:"roomName"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
}

type PricingDayResponse struct {
	RoomID string  `json:"roomId"`
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Reason string  `json:"reason,omitempty"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	Enabled     bool   `json:"enabled"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
