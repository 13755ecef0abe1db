package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homestay-client/internal/api"
	"homestay-client/internal/dto/request"
	"homestay-client/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newManagerStore(t *testing.T, handler http.Handler) ManagerStore {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := &utils.Config{
		API: utils.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5},
	}
	return NewManagerStore(api.NewClient(config, zap.NewNop()), zap.NewNop())
}

func TestProcessCheckInSendsMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/manager/bookings/b1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bookingPayload("b1", "CONFIRMED"))
	})
	mux.HandleFunc("POST /api/manager/process-checkin/b1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "AADHAR", r.FormValue("idProofType"))
		assert.Equal(t, "1234-5678", r.FormValue("idProofNumber"))
		assert.Equal(t, "101", r.FormValue("actualRoomNumber"))
		assert.Equal(t, "250.00", r.FormValue("additionalCharges"))

		file, header, err := r.FormFile("idProofImage")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "aadhar.jpg", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake-image-bytes", string(content))

		json.NewEncoder(w).Encode(bookingPayload("b1", "CHECKED_IN"))
	})

	s := newManagerStore(t, mux)

	_, err := s.FetchBooking(context.Background(), "b1")
	require.NoError(t, err)

	booking, err := s.ProcessCheckIn(context.Background(), "b1", &request.CheckInRequest{
		IDProofType:       "AADHAR",
		IDProofNumber:     "1234-5678",
		IDProofImageName:  "aadhar.jpg",
		IDProofImage:      strings.NewReader("fake-image-bytes"),
		ActualRoomNumber:  "101",
		AdditionalCharges: 250,
	})
	require.NoError(t, err)
	assert.Equal(t, "CHECKED_IN", string(booking.Status))
}

func TestProcessCheckInRejectsUnpaidBooking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/manager/bookings/b1", func(w http.ResponseWriter, r *http.Request) {
		payload := bookingPayload("b1", "CONFIRMED")
		payload["paymentStatus"] = "PENDING"
		json.NewEncoder(w).Encode(payload)
	})

	s := newManagerStore(t, mux)

	_, err := s.FetchBooking(context.Background(), "b1")
	require.NoError(t, err)

	_, err = s.ProcessCheckIn(context.Background(), "b1", &request.CheckInRequest{
		IDProofType:      "AADHAR",
		IDProofNumber:    "1234-5678",
		IDProofImageName: "aadhar.jpg",
		IDProofImage:     strings.NewReader("img"),
		ActualRoomNumber: "101",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment is not completed")
}

func TestUpdateRoomStatusUpsertsRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/manager/room-status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"roomId": "r1", "roomName": "Garden View", "status": "NEEDS_CLEANING"},
		})
	})
	mux.HandleFunc("PUT /api/manager/room-status/r1", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{
			"roomId": "r1", "roomName": "Garden View",
			"status": body["status"], "cleanedBy": body["cleanedBy"],
		})
	})

	s := newManagerStore(t, mux)

	_, err := s.FetchRoomStatuses(context.Background())
	require.NoError(t, err)

	record, err := s.UpdateRoomStatus(context.Background(), "r1", &request.RoomStatusUpdateRequest{
		Status:    "CLEAN",
		CleanedBy: "staff-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLEAN", record.Status)

	state := s.Snapshot()
	require.Len(t, state.RoomStatuses, 1)
	assert.Equal(t, "CLEAN", state.RoomStatuses[0].Status)
}

func TestUpdateGuestRequestStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/manager/guest-requests", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "g1", "guestName": "Sreekar", "request": "Extra towels", "status": "PENDING"},
		})
	})
	mux.HandleFunc("PUT /api/manager/guest-requests/g1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": "g1", "guestName": "Sreekar", "request": "Extra towels", "status": "COMPLETED",
		})
	})

	s := newManagerStore(t, mux)

	_, err := s.FetchGuestRequests(context.Background())
	require.NoError(t, err)

	updated, err := s.UpdateGuestRequest(context.Background(), "g1", &request.GuestRequestUpdateRequest{
		Status: "COMPLETED",
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)

	state := s.Snapshot()
	require.Len(t, state.GuestRequests, 1)
	assert.Equal(t, "COMPLETED", state.GuestRequests[0].Status)
}
