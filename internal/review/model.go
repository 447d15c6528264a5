package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("review not found")
	ErrAlreadyReviewed  = errors.New("order has already been reviewed")
	ErrNotCompleted     = errors.New("only completed orders can be reviewed")
	ErrNotCheckedOut    = errors.New("order cannot be reviewed before the check-out date")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

// Review is a guest's one-per-booking rating of a completed stay.
type Review struct {
	ID         string // UUID
	BookingID  int64
	PropertyID string
	UserID     string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
