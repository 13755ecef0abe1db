package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"homestay-client/internal/api"
	"homestay-client/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoomStore(t *testing.T, handler http.Handler) RoomStore {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := &utils.Config{
		API: utils.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5},
	}
	return NewRoomStore(api.NewClient(config, zap.NewNop()), zap.NewNop())
}

func roomPayload(id, name string) map[string]any {
	return map[string]any{
		"id": id, "name": name, "roomType": "DELUXE",
		"basePrice": 2500.0, "capacity": 4, "status": "ACTIVE",
	}
}

func TestFetchRoomsFailureKeepsData(t *testing.T) {
	var failing atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms", func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "database unavailable"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			roomPayload("r1", "Garden View"),
			roomPayload("r2", "Lake View"),
		})
	})

	s := newRoomStore(t, mux)

	rooms, err := s.FetchRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	failing.Store(true)

	_, err = s.FetchRooms(context.Background())
	require.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())

	state := s.Snapshot()
	assert.Len(t, state.Rooms, 2, "a failed refresh keeps the data already held")
	assert.Equal(t, "database unavailable", state.Err)
	assert.False(t, state.Loading)
}

func TestStaleRoomsResponseDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
			json.NewEncoder(w).Encode([]map[string]any{roomPayload("old", "Stale Room")})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{roomPayload("new", "Fresh Room")})
	})

	s := newRoomStore(t, mux)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		s.FetchRooms(context.Background())
	}()

	<-entered

	// The second fetch supersedes the still-inflight first one.
	rooms, err := s.FetchRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "new", rooms[0].ID)

	close(release)
	<-firstDone

	state := s.Snapshot()
	require.Len(t, state.Rooms, 1)
	assert.Equal(t, "new", state.Rooms[0].ID, "the superseded response must not clobber the newer one")
}

func TestCheckAvailabilityForwardsRange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms/availability", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "r1", q.Get("roomId"))
		assert.Equal(t, "2026-09-10", q.Get("startDate"))
		assert.Equal(t, "2026-09-12", q.Get("endDate"))

		json.NewEncoder(w).Encode(map[string]any{
			"available": true,
			"days": []map[string]any{
				{"date": "2026-09-10", "isAvailable": true},
				{"date": "2026-09-11", "isAvailable": true},
			},
		})
	})

	s := newRoomStore(t, mux)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	available, err := s.CheckAvailability(context.Background(), "r1", checkIn, checkOut)
	require.NoError(t, err)
	assert.True(t, available)

	state := s.Snapshot()
	assert.True(t, state.Available)
	assert.Len(t, state.Availability, 2)
}

func TestGetRoomPricing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms/pricing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"totalAmount": 5000.0,
			"breakdown": []map[string]any{
				{"date": "2026-09-10", "price": 2500.0},
				{"date": "2026-09-11", "price": 2500.0},
			},
		})
	})

	s := newRoomStore(t, mux)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	pricing, err := s.GetRoomPricing(context.Background(), "r1", checkIn, checkOut)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, pricing.TotalAmount)
	assert.Len(t, pricing.Breakdown, 2)
}

func TestGetRoomDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms/r1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(roomPayload("r1", "Garden View"))
	})

	s := newRoomStore(t, mux)

	room, err := s.GetRoomDetails(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Garden View", room.Name)
	assert.Equal(t, room, s.Snapshot().SelectedRoom)
}

func TestRefetchUnchangedRoomIsIdentical(t *testing.T) {
	payload := roomPayload("r1", "Garden View")
	payload["description"] = "Opens to the garden"
	payload["amenities"] = []string{"wifi", "balcony"}
	payload["createdAt"] = "2026-01-15T10:30:00"

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rooms/r1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	})

	s := newRoomStore(t, mux)

	first, err := s.GetRoomDetails(context.Background(), "r1")
	require.NoError(t, err)

	second, err := s.GetRoomDetails(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "an unchanged room round-trips to an identical entity")
	assert.Equal(t, second, s.Snapshot().SelectedRoom)
}
