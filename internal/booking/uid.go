package booking

import (
	"strings"

	"github.com/google/uuid"
)

const orderUIDPrefix = "ORDER-"

// NewOrderUID returns a fresh external-facing order identifier.
func NewOrderUID() string {
	return orderUIDPrefix + uuid.NewString()
}

// ParseOrderUID validates the ORDER-<uuid> format before any database lookup.
func ParseOrderUID(s string) (string, error) {
	if !strings.HasPrefix(s, orderUIDPrefix) {
		return "", ErrInvalidOrderID
	}
	if _, err := uuid.Parse(strings.TrimPrefix(s, orderUIDPrefix)); err != nil {
		return "", ErrInvalidOrderID
	}
	return s, nil
}
