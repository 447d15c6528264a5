package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, tenantMiddleware gin.HandlerFunc) {
	group := g.Group("/properties")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Tenant Routes ===
	tenant := group.Group("")
	tenant.Use(authMiddleware, tenantMiddleware)
	{
		tenant.POST("", h.Create)
		tenant.PATCH("/:id", h.Update)
		tenant.POST("/:id/photo", h.UploadPhoto)
		tenant.DELETE("/:id", h.Delete)
	}

	// Tenant's own property list
	g.GET("/tenant/properties", authMiddleware, tenantMiddleware, h.ListMine)
}
