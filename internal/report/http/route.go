package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, tenantMiddleware gin.HandlerFunc) {
	g.GET("/tenant/reports/sales", authMiddleware, tenantMiddleware, h.Sales)
}
