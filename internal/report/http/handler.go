package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/report"
)

type Handler struct {
	repo report.Repository
}

func NewHandler(repo report.Repository) *Handler {
	return &Handler{repo: repo}
}

type salesQuery struct {
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type SalesRowResponse struct {
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	Month        string `json:"month"`
	OrderCount   int    `json:"order_count"`
	TotalRevenue int64  `json:"total_revenue"`
}

func (h *Handler) Sales(c *gin.Context) {
	var q salesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := report.SalesFilter{PropertyID: q.PropertyID}
	if q.From != "" {
		filter.From, _ = time.ParseInLocation("2006-01-02", q.From, time.UTC)
	}
	if q.To != "" {
		filter.To, _ = time.ParseInLocation("2006-01-02", q.To, time.UTC)
	}

	rows, err := h.repo.SalesByMonth(c.Request.Context(), auth.GetUserID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sales report"})
		return
	}

	items := make([]SalesRowResponse, len(rows))
	for i, row := range rows {
		items[i] = SalesRowResponse{
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			Month:        row.Month.Format("2006-01"),
			OrderCount:   row.OrderCount,
			TotalRevenue: row.TotalRevenue,
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
