package store

import (
	"homestay-client/internal/api"
	"homestay-client/internal/nav"
	"homestay-client/pkg/keystore"
	"homestay-client/pkg/notice"

	"go.uber.org/zap"
)

type Store struct {
	Session SessionStore
	Room    RoomStore
	Booking BookingStore
	Admin   AdminStore
	Manager ManagerStore
}

func NewStore(
	client *api.Client,
	keys *keystore.Keystore,
	notices *notice.Center,
	navigator *nav.Navigator,
	log *zap.Logger,
) *Store {
	return &Store{
		Session: NewSessionStore(client, keys, notices, navigator, log),
		Room:    NewRoomStore(client, log),
		Booking: NewBookingStore(client, log),
		Admin:   NewAdminStore(client, log),
		Manager: NewManagerStore(client, log),
	}
}
