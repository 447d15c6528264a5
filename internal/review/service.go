package review

import (
	"context"

	"github.com/staylodge/staylodge-backend/internal/booking"
	"github.com/staylodge/staylodge-backend/internal/pkg/clock"
)

type CreateRequest struct {
	OrderUID string
	UserID   string
	Rating   int
	Comment  string
}

type bookingGetter interface {
	GetByUID(ctx context.Context, uid string) (*booking.Booking, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*Review, error)
	AverageRating(ctx context.Context, propertyID string) (float64, int, error)
}

type service struct {
	repo     Repository
	bookings bookingGetter
	clock    clock.Clock
}

func NewService(repo Repository, bookings bookingGetter, clk clock.Clock) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
		clock:    clk,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	uid, err := booking.ParseOrderUID(req.OrderUID)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if b.UserID != req.UserID {
		return nil, ErrPermissionDenied
	}
	if b.Status != booking.StatusCompleted {
		return nil, ErrNotCompleted
	}
	if s.clock.Now().Before(b.CheckOutDate) {
		return nil, ErrNotCheckedOut
	}

	rv := &Review{
		BookingID:  b.ID,
		PropertyID: b.PropertyID,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListByProperty(ctx context.Context, propertyID string) ([]*Review, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *service) AverageRating(ctx context.Context, propertyID string) (float64, int, error) {
	return s.repo.AverageRating(ctx, propertyID)
}
