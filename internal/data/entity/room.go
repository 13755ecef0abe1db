package entity

import "time"

type RoomStatus string

const (
	RoomStatusActive      RoomStatus = "ACTIVE"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
)

// Room is server-owned; the client holds a read-through copy
// refreshed per fetch.
type Room struct {
	ID          string
	Name        string
	Description string
	RoomType    string
	BasePrice   float64
	Capacity    int
	Amenities   []string
	Images      []string
	Status      RoomStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
