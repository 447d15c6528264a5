package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be guest or tenant")
)

// Roles supported by the marketplace. A tenant owns properties and
// manages incoming orders; a guest books rooms.
const (
	RoleGuest  = "guest"
	RoleTenant = "tenant"
)

// User represents a user in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     string
	PhoneNumber  *string
	Role         string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsTenant reports whether the user can own properties.
func (u *User) IsTenant() bool {
	return u.Role == RoleTenant
}
