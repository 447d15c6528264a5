package rate

import (
	"context"
	"errors"
	"time"

	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/room"
)

type CreateRequest struct {
	PropertyID      string
	RoomID          *string
	StartDate       time.Time
	EndDate         time.Time
	AdjustmentType  string
	AdjustmentValue float64
}

type UpdateRequest struct {
	RoomID          *string
	StartDate       *time.Time
	EndDate         *time.Time
	AdjustmentType  *string
	AdjustmentValue *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, creatorUserID string) (*PeakSeasonRate, error)
	ListByProperty(ctx context.Context, propertyID string, userID string) ([]*PeakSeasonRate, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*PeakSeasonRate, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}

type roomGetter interface {
	GetByID(ctx context.Context, id string) (*room.Room, error)
}

type service struct {
	repo        Repository
	propService property.Service
	rooms       roomGetter
}

func NewService(repo Repository, propService property.Service, rooms roomGetter) Service {
	return &service{
		repo:        repo,
		propService: propService,
		rooms:       rooms,
	}
}

func (s *service) ownerCheck(ctx context.Context, propertyID, userID string) error {
	p, err := s.propService.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p.OwnerID != userID {
		return property.ErrPermissionDenied
	}
	return nil
}

func validateAdjustment(adjType string, value float64) error {
	switch adjType {
	case AdjustmentPercentage:
		if value < 0 || value > 1000 {
			return ErrInvalidValue
		}
	case AdjustmentNominal:
		if value < 0 {
			return ErrInvalidValue
		}
	default:
		return ErrInvalidType
	}
	return nil
}

// roomCheck verifies a room-scoped rate points at a room of the same property.
func (s *service) roomCheck(ctx context.Context, roomID *string, propertyID string) error {
	if roomID == nil {
		return nil
	}
	rm, err := s.rooms.GetByID(ctx, *roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return ErrInvalidRoom
		}
		return err
	}
	if rm.PropertyID != propertyID {
		return ErrInvalidRoom
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, creatorUserID string) (*PeakSeasonRate, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if err := validateAdjustment(req.AdjustmentType, req.AdjustmentValue); err != nil {
		return nil, err
	}

	if err := s.ownerCheck(ctx, req.PropertyID, creatorUserID); err != nil {
		return nil, err
	}
	if err := s.roomCheck(ctx, req.RoomID, req.PropertyID); err != nil {
		return nil, err
	}

	r := &PeakSeasonRate{
		PropertyID:      req.PropertyID,
		RoomID:          req.RoomID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		AdjustmentType:  req.AdjustmentType,
		AdjustmentValue: req.AdjustmentValue,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) ListByProperty(ctx context.Context, propertyID string, userID string) ([]*PeakSeasonRate, error) {
	if err := s.ownerCheck(ctx, propertyID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*PeakSeasonRate, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ownerCheck(ctx, r.PropertyID, updaterUserID); err != nil {
		return nil, err
	}

	if req.RoomID != nil {
		if err := s.roomCheck(ctx, req.RoomID, r.PropertyID); err != nil {
			return nil, err
		}
		r.RoomID = req.RoomID
	}
	if req.StartDate != nil {
		r.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		r.EndDate = *req.EndDate
	}
	if !r.EndDate.After(r.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if req.AdjustmentType != nil {
		r.AdjustmentType = *req.AdjustmentType
	}
	if req.AdjustmentValue != nil {
		r.AdjustmentValue = *req.AdjustmentValue
	}
	if err := validateAdjustment(r.AdjustmentType, r.AdjustmentValue); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ownerCheck(ctx, r.PropertyID, deleterUserID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
