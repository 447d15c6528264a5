package property

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("property not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrPermissionDenied = errors.New("permission denied")
)

// Property is a rentable place (house, villa, guesthouse) owned by a tenant.
type Property struct {
	ID          string // UUID
	OwnerID     string // user id of the owning tenant
	Name        string
	Description string
	Address     string
	City        string
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing properties.
type Filter struct {
	OwnerID   string
	City      string
	Keyword   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
