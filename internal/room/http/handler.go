package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/pkg/response"
	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

type byPropertyIDRequest struct {
	PropertyID string `uri:"id" binding:"required,uuid"`
}

func (h *Handler) List(c *gin.Context) {
	var uri byPropertyIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := room.Filter{
		PropertyID: uri.PropertyID,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	rooms, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, rm := range rooms {
		items[i] = NewRoomResponse(rm)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get room"})
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(rm))
}

func (h *Handler) Create(c *gin.Context) {
	var uri byPropertyIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body CreateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rm, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		PropertyID:  uri.PropertyID,
		Name:        body.Name,
		Description: body.Description,
		BasePrice:   body.BasePrice,
		Capacity:    body.Capacity,
		TotalUnits:  body.TotalUnits,
	}, auth.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, room.ErrInvalidProperty):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, room.ErrEmptyName),
			errors.Is(err, room.ErrInvalidPrice),
			errors.Is(err, room.ErrInvalidCapacity),
			errors.Is(err, room.ErrInvalidUnits):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(rm))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rm, err := h.service.Update(c.Request.Context(), uri.ID, room.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		BasePrice:   body.BasePrice,
		Capacity:    body.Capacity,
		TotalUnits:  body.TotalUnits,
	}, auth.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, room.ErrEmptyName),
			errors.Is(err, room.ErrInvalidPrice),
			errors.Is(err, room.ErrInvalidCapacity),
			errors.Is(err, room.ErrInvalidUnits):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(rm))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	err := h.service.Delete(c.Request.Context(), req.ID, auth.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
