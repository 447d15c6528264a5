package property

import (
	"context"
	"strings"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Property, error)
	GetByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context, filter Filter) ([]*Property, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*Property, error)
	SetPhoto(ctx context.Context, id, updaterUserID, photoURL string) (*Property, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Property, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	p := &Property{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Property, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the owning tenant may modify a property.
	if p.OwnerID != updaterUserID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) SetPhoto(ctx context.Context, id, updaterUserID, photoURL string) (*Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.OwnerID != updaterUserID {
		return nil, ErrPermissionDenied
	}

	p.PhotoURL = &photoURL

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if p.OwnerID != deleterUserID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}
