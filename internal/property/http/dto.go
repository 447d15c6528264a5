package http

import (
	"time"

	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/property"
)

// ListPropertiesRequest defines query parameters for listing properties.
type ListPropertiesRequest struct {
	request.ListParams
	City    string `form:"city"`
	Keyword string `form:"keyword"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=name city created_at"`
}

// PropertyResponse is the shape of property data returned in API responses.
type PropertyResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PhotoURL    *string   `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PropertyTag is a brief representation of a property.
type PropertyTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		City:        p.City,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

type UpdatePropertyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
}
