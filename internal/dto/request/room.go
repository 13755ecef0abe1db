package request

type SaveRoomRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	RoomType    string   `json:"roomType" validate:"required"`
	BasePrice   float64  `json:"basePrice" validate:"required,min=0"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
	Status      string   `json:"status" validate:"required,oneof=ACTIVE MAINTENANCE"`
}
