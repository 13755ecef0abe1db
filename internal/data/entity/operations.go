package entity

import "time"

// Operational entities consumed by the manager dashboards. Server
// owned; the client view is read/update only.

type GuestRequest struct {
	ID        string
	BookingID string
	GuestName string
	Request   string
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomStatusRecord struct {
	RoomID    string
	RoomName  string
	Status    string
	CleanedBy string
	Notes     string
	UpdatedAt time.Time
}
