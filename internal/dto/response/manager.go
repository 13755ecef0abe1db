package response

import (
	"homestay-client/internal/data/entity"
)

type ManagerDashboardResponse struct {
	TodayCheckIns   []BookingResponse      `json:"todayCheckIns"`
	TodayCheckOuts  []BookingResponse      `json:"todayCheckOuts"`
	OccupiedRooms   int                    `json:"occupiedRooms"`
	PendingRequests []GuestRequestResponse `json:"pendingRequests,omitempty"`
}

type GuestRequestResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"bookingId,omitempty"`
	GuestName string `json:"guestName,omitempty"`
	Request   string `json:"request,omitempty"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type RoomStatusResponse struct {
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName,omitempty"`
	Status    string `json:"status"`
	CleanedBy string `json:"cleanedBy,omitempty"`
	Notes     string `json:"notes,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Helper converters
func GuestRequestToEntity(g *GuestRequestResponse) *entity.GuestRequest {
	return &entity.GuestRequest{
		ID:        g.ID,
		BookingID: g.BookingID,
		GuestName: g.GuestName,
		Request:   g.Request,
		Status:    g.Status,
		Notes:     g.Notes,
		CreatedAt: parseTimestamp(g.CreatedAt),
		UpdatedAt: parseTimestamp(g.UpdatedAt),
	}
}

func RoomStatusToEntity(r *RoomStatusResponse) *entity.RoomStatusRecord {
	return &entity.RoomStatusRecord{
		RoomID:    r.RoomID,
		RoomName:  r.RoomName,
		Status:    r.Status,
		CleanedBy: r.CleanedBy,
		Notes:     r.Notes,
		UpdatedAt: parseTimestamp(r.UpdatedAt),
	}
}
