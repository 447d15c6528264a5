package report

import "time"

// SalesRow is one month of revenue for one property. Only confirmed and
// completed bookings count as sales.
type SalesRow struct {
	PropertyID   string
	PropertyName string
	Month        time.Time
	OrderCount   int
	TotalRevenue int64
}

// SalesFilter narrows the report to a property and/or a created-at window.
type SalesFilter struct {
	PropertyID string
	From       time.Time
	To         time.Time
}
