package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// Unauthenticated; authenticity comes from the signature check.
	g.POST("/payments/notifications", h.Notify)
}
