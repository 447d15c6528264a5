package http

import (
	"time"

	"github.com/staylodge/staylodge-backend/internal/rate"
)

const dateLayout = "2006-01-02"

type RateResponse struct {
	ID              string    `json:"id"`
	PropertyID      string    `json:"property_id"`
	RoomID          *string   `json:"room_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	AdjustmentType  string    `json:"adjustment_type"`
	AdjustmentValue float64   `json:"adjustment_value"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewRateResponse(r *rate.PeakSeasonRate) RateResponse {
	return RateResponse{
		ID:              r.ID,
		PropertyID:      r.PropertyID,
		RoomID:          r.RoomID,
		StartDate:       r.StartDate.Format(dateLayout),
		EndDate:         r.EndDate.Format(dateLayout),
		AdjustmentType:  r.AdjustmentType,
		AdjustmentValue: r.AdjustmentValue,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type CreateRateRequest struct {
	RoomID          *string `json:"room_id" binding:"omitempty,uuid"`
	StartDate       string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	AdjustmentType  string  `json:"adjustment_type" binding:"required,oneof=percentage nominal"`
	AdjustmentValue float64 `json:"adjustment_value" binding:"required"`
}

type UpdateRateRequest struct {
	RoomID          *string  `json:"room_id" binding:"omitempty,uuid"`
	StartDate       *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	AdjustmentType  *string  `json:"adjustment_type" binding:"omitempty,oneof=percentage nominal"`
	AdjustmentValue *float64 `json:"adjustment_value"`
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
