package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, tenantMiddleware gin.HandlerFunc) {
	// Rates are tenant-managed; guests only see their effect through quotes.
	g.POST("/properties/:id/peak-season-rates", authMiddleware, tenantMiddleware, h.Create)
	g.GET("/properties/:id/peak-season-rates", authMiddleware, tenantMiddleware, h.List)

	tenant := g.Group("/peak-season-rates")
	tenant.Use(authMiddleware, tenantMiddleware)
	{
		tenant.PATCH("/:id", h.Update)
		tenant.DELETE("/:id", h.Delete)
	}
}
