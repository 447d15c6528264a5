package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/pkg/response"
	"github.com/staylodge/staylodge-backend/internal/pkg/storage"
	"github.com/staylodge/staylodge-backend/internal/property"
)

const maxPhotoSizeBytes = 5 << 20 // 5 MiB

type Handler struct {
	service   property.Service
	files     storage.Storage
	processor *storage.ImageProcessor
}

func NewHandler(service property.Service, files storage.Storage, processor *storage.ImageProcessor) *Handler {
	return &Handler{
		service:   service,
		files:     files,
		processor: processor,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := property.Filter{
		City:      req.City,
		Keyword:   req.Keyword,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	properties, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}

	items := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		items[i] = NewPropertyResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// ListMine lists properties owned by the authenticated tenant.
func (h *Handler) ListMine(c *gin.Context) {
	var req ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := property.Filter{
		OwnerID:   auth.GetUserID(c),
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	properties, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}

	items := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		items[i] = NewPropertyResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get property"})
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponse(p))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), property.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		City:        body.City,
	})
	if err != nil {
		if errors.Is(err, property.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, NewPropertyResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdatePropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, property.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		City:        body.City,
	}, auth.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, property.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update property"})
		}
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponse(p))
}

// UploadPhoto accepts a multipart image, normalizes it and stores it as the
// property's cover photo.
func (h *Handler) UploadPhoto(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo exceeds the maximum allowed size"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	defer file.Close()

	normalized, err := h.processor.Normalize(file, 1920, 1080)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a valid image"})
		return
	}

	path := fmt.Sprintf("properties/%s.jpg", uri.ID)
	if err := h.files.Save(c.Request.Context(), path, normalized); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	p, err := h.service.SetPhoto(c.Request.Context(), uri.ID, auth.GetUserID(c), "/uploads/"+path)
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update property"})
		}
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponse(p))
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
		case errors.Is(err, property.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		case errors.Is(err, property.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete property"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
