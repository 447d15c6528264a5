package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidProperty = errors.New("invalid property_id")
	ErrInvalidPrice    = errors.New("base price must not be negative")
	ErrInvalidUnits    = errors.New("total units must be positive")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// Room is a bookable unit type within a property. total_units is the number
// of identical physical units; bookings are counted against it rather than
// assigned to a specific unit.
type Room struct {
	ID          string // UUID
	PropertyID  string
	Name        string
	Description string
	BasePrice   int64 // nightly price in the smallest currency unit
	Capacity    int
	TotalUnits  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	PropertyID string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
