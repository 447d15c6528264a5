package rate

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("peak season rate not found")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidType      = errors.New("adjustment type must be percentage or nominal")
	ErrInvalidValue     = errors.New("adjustment value is out of range")
	ErrInvalidRoom      = errors.New("room does not belong to the property")
)

const (
	AdjustmentPercentage = "percentage"
	AdjustmentNominal    = "nominal"
)

// PeakSeasonRate raises the nightly price of rooms for a date window. A rate
// with RoomID set applies to that room only; otherwise it covers every room
// of the property. Room-specific rates take precedence over property-wide
// ones for the nights both cover.
type PeakSeasonRate struct {
	ID              string // UUID
	PropertyID      string
	RoomID          *string
	StartDate       time.Time // date only, inclusive
	EndDate         time.Time // date only, exclusive
	AdjustmentType  string
	AdjustmentValue float64 // percent for percentage, smallest currency unit for nominal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppliesTo reports whether the rate covers the given night. A rate covers
// nights in [start_date, end_date).
func (r *PeakSeasonRate) AppliesTo(night time.Time) bool {
	return !night.Before(r.StartDate) && night.Before(r.EndDate)
}
