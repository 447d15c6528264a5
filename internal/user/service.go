package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/staylodge/staylodge-backend/internal/auth"
)

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Role        string
}

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, fmt.Errorf("email is required")
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", s.minPasswordLength)
	}

	if req.Role != RoleGuest && req.Role != RoleTenant {
		return nil, ErrInvalidRole
	}

	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		// Found an existing user.
		return nil, ErrEmailAlreadyUsed
	}
	// If the error is something other than "not found", propagate it.
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	// Hash the password.
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var phonePtr *string
	if p := strings.TrimSpace(req.PhoneNumber); p != "" {
		phonePtr = &p
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		PhoneNumber:  phonePtr,
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	// Compare password hash.
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Update last_login_at (best effort; do not fail login if update fails).
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
