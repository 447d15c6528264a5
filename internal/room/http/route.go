package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, tenantMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/properties/:id/rooms", h.List)
	g.GET("/rooms/:id", h.Get)

	// === Tenant Routes ===
	g.POST("/properties/:id/rooms", authMiddleware, tenantMiddleware, h.Create)

	tenant := g.Group("/rooms")
	tenant.Use(authMiddleware, tenantMiddleware)
	{
		tenant.PATCH("/:id", h.Update)
		tenant.DELETE("/:id", h.Delete)
	}
}
