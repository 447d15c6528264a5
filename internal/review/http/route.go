package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/properties/:id/reviews", h.ListByProperty)
	g.GET("/properties/:id/rating", h.RatingSummary)

	// === Guest Routes ===
	g.POST("/bookings/:orderId/reviews", authMiddleware, h.Create)
}
