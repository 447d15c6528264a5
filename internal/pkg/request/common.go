package request

// ByIDRequest is a common struct for endpoints that require a UUID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ByOrderUIDRequest is a common struct for order-scoped endpoints.
// The value must match the ORDER-<uuid> format; handlers validate it
// with booking.ParseOrderUID before any database lookup.
type ByOrderUIDRequest struct {
	OrderID string `uri:"orderId" binding:"required"`
}

// ListParams holds common pagination and sorting query parameters.
type ListParams struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}
