package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, tenantMiddleware gin.HandlerFunc) {
	// === Guest Routes ===
	guest := g.Group("/bookings")
	guest.Use(authMiddleware)
	{
		guest.POST("", h.Create)
		guest.GET("", h.ListMine)
		guest.GET("/:orderId", h.Get)
		guest.POST("/:orderId/payment-proof", h.UploadPaymentProof)
		guest.PUT("/:orderId/cancel", h.Cancel)
	}

	// === Tenant Routes ===
	tenant := g.Group("/tenant/orders")
	tenant.Use(authMiddleware, tenantMiddleware)
	{
		tenant.GET("", h.ListTenantOrders)
		tenant.PUT("/:orderId/confirm", h.Confirm)
		tenant.PUT("/:orderId/reject", h.Reject)
		tenant.PUT("/:orderId/complete", h.Complete)
	}
}
