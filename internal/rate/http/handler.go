package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/rate"
)

type Handler struct {
	service rate.Service
}

func NewHandler(service rate.Service) *Handler {
	return &Handler{service: service}
}

type byPropertyIDRequest struct {
	PropertyID string `uri:"id" binding:"required,uuid"`
}

func writeRateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rate.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "peak season rate not found"})
	case errors.Is(err, property.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
	case errors.Is(err, property.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, rate.ErrInvalidDateRange),
		errors.Is(err, rate.ErrInvalidType),
		errors.Is(err, rate.ErrInvalidValue),
		errors.Is(err, rate.ErrInvalidRoom):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process peak season rate"})
	}
}

func (h *Handler) Create(c *gin.Context) {
	var uri byPropertyIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body CreateRateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, _ := parseDate(body.StartDate)
	end, _ := parseDate(body.EndDate)

	r, err := h.service.Create(c.Request.Context(), rate.CreateRequest{
		PropertyID:      uri.PropertyID,
		RoomID:          body.RoomID,
		StartDate:       start,
		EndDate:         end,
		AdjustmentType:  body.AdjustmentType,
		AdjustmentValue: body.AdjustmentValue,
	}, auth.GetUserID(c))
	if err != nil {
		writeRateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRateResponse(r))
}

func (h *Handler) List(c *gin.Context) {
	var uri byPropertyIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	rates, err := h.service.ListByProperty(c.Request.Context(), uri.PropertyID, auth.GetUserID(c))
	if err != nil {
		writeRateError(c, err)
		return
	}

	items := make([]RateResponse, len(rates))
	for i, r := range rates {
		items[i] = NewRateResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateRateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := rate.UpdateRequest{
		RoomID:          body.RoomID,
		AdjustmentType:  body.AdjustmentType,
		AdjustmentValue: body.AdjustmentValue,
	}
	if body.StartDate != nil {
		start, _ := parseDate(*body.StartDate)
		req.StartDate = &start
	}
	if body.EndDate != nil {
		end, _ := parseDate(*body.EndDate)
		req.EndDate = &end
	}

	r, err := h.service.Update(c.Request.Context(), uri.ID, req, auth.GetUserID(c))
	if err != nil {
		writeRateError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRateResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		writeRateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
