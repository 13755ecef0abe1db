package request

import "io"

// CheckInRequest is sent as multipart form data because of the ID
// proof upload.
type CheckInRequest struct {
	IDProofType             string    `validate:"required"`
	IDProofNumber           string    `validate:"required"`
	IDProofImageName        string    `validate:"required"`
	IDProofImage            io.Reader `validate:"required"`
	ActualRoomNumber        string    `validate:"required"`
	AdditionalCharges       float64   `validate:"min=0"`
	AdditionalChargesReason string
	AdditionalNotes         string
}

type CheckOutRequest struct {
	RoomCondition           string  `json:"roomCondition" validate:"required"`
	AdditionalCharges       float64 `json:"additionalCharges" validate:"min=0"`
	AdditionalChargesReason string  `json:"additionalChargesReason,omitempty"`
	DamagesReported         bool    `json:"damagesReported"`
	DamagesDescription      string  `json:"damagesDescription,omitempty"`
	CleaningRequired        bool    `json:"cleaningRequired"`
	Notes                   string  `json:"notes,omitempty"`
}

type RoomStatusUpdateRequest struct {
	Status    string `json:"status" validate:"required"`
	CleanedBy string `json:"cleanedBy,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type GuestRequestUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}
