package http

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/booking"
	"github.com/staylodge/staylodge-backend/internal/pkg/request"
	"github.com/staylodge/staylodge-backend/internal/pkg/response"
	"github.com/staylodge/staylodge-backend/internal/pkg/storage"
)

const maxProofSizeBytes = 5 << 20 // 5 MiB

type Handler struct {
	service booking.Service
	files   storage.Storage
}

func NewHandler(service booking.Service, files storage.Storage) *Handler {
	return &Handler{
		service: service,
		files:   files,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", map[string]string{"details": err.Error()})
		return
	}

	checkIn, _ := parseDate(body.CheckInDate)
	checkOut, _ := parseDate(body.CheckOutDate)

	b, token, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:       auth.GetUserID(c),
		RoomID:       body.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Fullname:     body.Fullname,
		Email:        body.Email,
		PhoneNumber:  body.PhoneNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Order:            NewBookingResponse(b),
		TransactionToken: token,
	})
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByOrderUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", map[string]string{"details": err.Error()})
		return
	}

	b, err := h.service.GetByUID(c.Request.Context(), uri.OrderID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListMine(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", map[string]string{"details": err.Error()})
		return
	}

	filter := booking.Filter{
		PropertyID: req.PropertyID,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	bookings, total, err := h.service.ListForGuest(c.Request.Context(), auth.GetUserID(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// ListTenantOrders lists bookings on properties owned by the tenant.
func (h *Handler) ListTenantOrders(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", map[string]string{"details": err.Error()})
		return
	}

	filter := booking.Filter{
		PropertyID: req.PropertyID,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	bookings, total, err := h.service.ListForTenant(c.Request.Context(), auth.GetUserID(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// UploadPaymentProof accepts a multipart transfer receipt and moves the
// order to processing.
func (h *Handler) UploadPaymentProof(c *gin.Context) {
	var uri request.ByOrderUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", map[string]string{"details": err.Error()})
		return
	}

	uid, err := booking.ParseOrderUID(uri.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		response.BadRequest(c, "proof file is required", nil)
		return
	}
	if fileHeader.Size > maxProofSizeBytes {
		response.BadRequest(c, "proof exceeds the maximum allowed size", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf":
	default:
		response.BadRequest(c, "proof must be a jpg, png or pdf file", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read proof file", nil)
		return
	}
	defer file.Close()

	path := fmt.Sprintf("payments/%s%s", uid, ext)
	if err := h.files.Save(c.Request.Context(), path, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store proof"})
		return
	}

	b, err := h.service.AttachPaymentProof(c.Request.Context(), uid, auth.GetUserID(c), "/uploads/"+path)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_proof": b.PaymentProof})
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByOrderUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", map[string]string{"details": err.Error()})
		return
	}

	var body CancelBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "cancellation_reason is required", map[string]string{"details": err.Error()})
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), uri.OrderID, auth.GetUserID(c), body.CancellationReason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

// transition runs a tenant-driven status change and writes the result.
func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, orderUID, tenantID string) (*booking.Booking, error)) {
	var uri request.ByOrderUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", map[string]string{"details": err.Error()})
		return
	}

	b, err := fn(c.Request.Context(), uri.OrderID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
