package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/payment"
)

type Handler struct {
	service *payment.Service
}

func NewHandler(service *payment.Service) *Handler {
	return &Handler{service: service}
}

// Notify receives gateway webhooks. It always answers 200: the gateway
// treats anything else as a delivery failure and retries aggressively.
// Internal failures are logged inside the service.
func (h *Handler) Notify(c *gin.Context) {
	var n payment.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	_ = h.service.HandleNotification(c.Request.Context(), n)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
