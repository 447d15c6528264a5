package room

import (
	"context"
	"errors"
	"strings"

	"github.com/staylodge/staylodge-backend/internal/property"
)

type CreateRequest struct {
	PropertyID  string
	Name        string
	Description string
	BasePrice   int64
	Capacity    int
	TotalUnits  int
}

type UpdateRequest struct {
	Name        *string
	Description *string
	BasePrice   *int64
	Capacity    *int
	TotalUnits  *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, creatorUserID string) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*Room, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}

type service struct {
	repo        Repository
	propService property.Service
}

func NewService(repo Repository, propService property.Service) Service {
	return &service{
		repo:        repo,
		propService: propService,
	}
}

// ownerCheck verifies that the acting user owns the property.
func (s *service) ownerCheck(ctx context.Context, propertyID, userID string) error {
	p, err := s.propService.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return ErrInvalidProperty
		}
		return err
	}
	if p.OwnerID != userID {
		return property.ErrPermissionDenied
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, creatorUserID string) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.BasePrice < 0 {
		return nil, ErrInvalidPrice
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if req.TotalUnits <= 0 {
		return nil, ErrInvalidUnits
	}

	if err := s.ownerCheck(ctx, req.PropertyID, creatorUserID); err != nil {
		return nil, err
	}

	rm := &Room{
		PropertyID:  req.PropertyID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Capacity:    req.Capacity,
		TotalUnits:  req.TotalUnits,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ownerCheck(ctx, rm.PropertyID, updaterUserID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		rm.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		rm.Description = *req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, ErrInvalidPrice
		}
		// Existing bookings keep their snapshotted total; only new quotes
		// see the new base price.
		rm.BasePrice = *req.BasePrice
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		rm.Capacity = *req.Capacity
	}
	if req.TotalUnits != nil {
		if *req.TotalUnits <= 0 {
			return nil, ErrInvalidUnits
		}
		rm.TotalUnits = *req.TotalUnits
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string) error {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ownerCheck(ctx, rm.PropertyID, deleterUserID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
