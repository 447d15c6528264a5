package http

import (
	"time"

	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/room"
)

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	SortBy string `form:"sort_by" binding:"omitempty,oneof=name base_price created_at"`
}

type RoomResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   int64     `json:"base_price"`
	Capacity    int       `json:"capacity"`
	TotalUnits  int       `json:"total_units"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomTag is a brief representation of a room.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:          rm.ID,
		PropertyID:  rm.PropertyID,
		Name:        rm.Name,
		Description: rm.Description,
		BasePrice:   rm.BasePrice,
		Capacity:    rm.Capacity,
		TotalUnits:  rm.TotalUnits,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   int64  `json:"base_price" binding:"required,min=0"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	TotalUnits  int    `json:"total_units" binding:"required,min=1"`
}

type UpdateRoomRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BasePrice   *int64  `json:"base_price"`
	Capacity    *int    `json:"capacity"`
	TotalUnits  *int    `json:"total_units"`
}
