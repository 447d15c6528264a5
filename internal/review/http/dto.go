package http

import (
	"time"

	"github.com/staylodge/staylodge-backend/internal/review"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	BookingID  int64     `json:"booking_id"`
	PropertyID string    `json:"property_id"`
	UserID     string    `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         rv.ID,
		BookingID:  rv.BookingID,
		PropertyID: rv.PropertyID,
		UserID:     rv.UserID,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	}
}

type RatingSummaryResponse struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
