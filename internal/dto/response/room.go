package response

import (
	"homestay-client/internal/data/entity"
	"homestay-client/pkg/utils"
)

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	RoomType    string   `json:"roomType"`
	BasePrice   float64  `json:"basePrice"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type AvailabilityDayResponse struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	Available bool                      `json:"available"`
	Days      []AvailabilityDayResponse `json:"days,omitempty"`
}

type DailyRateResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type PricingResponse struct {
	TotalAmount float64             `json:"totalAmount"`
	Breakdown   []DailyRateResponse `json:"breakdown"`
}

// Helper converters
func RoomToEntity(r *RoomResponse) *entity.Room {
	return &entity.Room{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		RoomType:    r.RoomType,
		BasePrice:   r.BasePrice,
		Capacity:    r.Capacity,
		Amenities:   r.Amenities,
		Images:      r.Images,
		Status:      entity.RoomStatus(r.Status),
		CreatedAt:   parseTimestamp(r.CreatedAt),
		UpdatedAt:   parseTimestamp(r.UpdatedAt),
	}
}

func AvailabilityToEntity(a *AvailabilityResponse) []entity.AvailabilityWindow {
	windows := make([]entity.AvailabilityWindow, 0, len(a.Days))
	for _, day := range a.Days {
		date, err := utils.ParseDate(day.Date)
		if err != nil {
			continue
		}
		windows = append(windows, entity.AvailabilityWindow{
			Date:        date,
			IsAvailable: day.IsAvailable,
			Reason:      day.Reason,
		})
	}
	return windows
}

func PricingToEntity(p *PricingResponse) *entity.PricingBreakdown {
	breakdown := make([]entity.DailyRate, 0, len(p.Breakdown))
	for _, rate := range p.Breakdown {
		date, err := utils.ParseDate(rate.Date)
		if err != nil {
			continue
		}
		breakdown = append(breakdown, entity.DailyRate{Date: date, Price: rate.Price})
	}
	return &entity.PricingBreakdown{
		Breakdown:   breakdown,
		TotalAmount: p.TotalAmount,
	}
}
