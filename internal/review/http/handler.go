package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/pkg/response"
	"github.com/staylodge/staylodge-backend/internal/review"
)

type Handler struct {
	service review.Service
}

func NewHandler(service review.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var uri request.ByOrderUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body CreateReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rv, err := h.service.Create(c.Request.Context(), review.CreateRequest{
		OrderUID: uri.OrderID,
		UserID:   auth.GetUserID(c),
		Rating:   body.Rating,
		Comment:  body.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, review.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotCompleted), errors.Is(err, review.ErrNotCheckedOut),
			errors.Is(err, review.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			// booking-side errors (not found, malformed id) carry their own
			// status codes.
			response.Error(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, NewReviewResponse(rv))
}

func (h *Handler) ListByProperty(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	reviews, err := h.service.ListByProperty(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	items := make([]ReviewResponse, len(reviews))
	for i, rv := range reviews {
		items[i] = NewReviewResponse(rv)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) RatingSummary(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	avg, count, err := h.service.AverageRating(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute rating"})
		return
	}

	c.JSON(http.StatusOK, RatingSummaryResponse{AverageRating: avg, ReviewCount: count})
}
