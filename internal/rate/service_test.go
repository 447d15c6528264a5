package rate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tenantID = "9b1de2c4-7a11-4f0b-bb62-58f0a4f3dd02"
	otherID  = "0a6f1f31-2f42-4f6e-8f90-aa17c2f8ee03"
	propID   = "3f2b93c6-b1d5-4c9a-8af7-14e2f1c4bb04"
	roomID   = "5c8a7d90-43ef-4f4a-9ad2-77d91a02cc05"
)

type fakeRepo struct {
	byID map[string]*PeakSeasonRate
	next int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[string]*PeakSeasonRate)}
}

func (f *fakeRepo) Create(ctx context.Context, r *PeakSeasonRate) error {
	f.next++
	r.ID = fmt.Sprintf("rate-%d", f.next)
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*PeakSeasonRate, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) ListByProperty(ctx context.Context, propertyID string) ([]*PeakSeasonRate, error) {
	var out []*PeakSeasonRate
	for _, r := range f.byID {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForStay(ctx context.Context, roomID, propertyID string, from, to time.Time) ([]*PeakSeasonRate, error) {
	return nil, nil
}

func (f *fakeRepo) Update(ctx context.Context, r *PeakSeasonRate) error {
	if _, ok := f.byID[r.ID]; !ok {
		return ErrNotFound
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeProps struct{}

func (fakeProps) Create(ctx context.Context, req property.CreateRequest) (*property.Property, error) {
	return nil, nil
}

func (fakeProps) GetByID(ctx context.Context, id string) (*property.Property, error) {
	if id != propID {
		return nil, property.ErrNotFound
	}
	return &property.Property{ID: propID, OwnerID: tenantID}, nil
}

func (fakeProps) List(ctx context.Context, filter property.Filter) ([]*property.Property, int, error) {
	return nil, 0, nil
}

func (fakeProps) Update(ctx context.Context, id string, req property.UpdateRequest, updaterUserID string) (*property.Property, error) {
	return nil, nil
}

func (fakeProps) SetPhoto(ctx context.Context, id, updaterUserID, photoURL string) (*property.Property, error) {
	return nil, nil
}

func (fakeProps) Delete(ctx context.Context, id string, deleterUserID string) error {
	return nil
}

type fakeRooms struct{}

func (fakeRooms) GetByID(ctx context.Context, id string) (*room.Room, error) {
	if id != roomID {
		return nil, room.ErrNotFound
	}
	return &room.Room{ID: roomID, PropertyID: propID}, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validCreate() CreateRequest {
	return CreateRequest{
		PropertyID:      propID,
		StartDate:       day(2026, 6, 1),
		EndDate:         day(2026, 9, 1),
		AdjustmentType:  AdjustmentPercentage,
		AdjustmentValue: 25,
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeProps{}, fakeRooms{})

	r, err := svc.Create(context.Background(), validCreate(), tenantID)
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Nil(t, r.RoomID)
}

func TestCreate_RoomScoped(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeProps{}, fakeRooms{})

	req := validCreate()
	id := roomID
	req.RoomID = &id

	r, err := svc.Create(context.Background(), req, tenantID)
	require.NoError(t, err)
	require.NotNil(t, r.RoomID)
	assert.Equal(t, roomID, *r.RoomID)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeProps{}, fakeRooms{})

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.Create(context.Background(), validCreate(), otherID)
		assert.ErrorIs(t, err, property.ErrPermissionDenied)
	})

	t.Run("end date not after start", func(t *testing.T) {
		req := validCreate()
		req.EndDate = req.StartDate
		_, err := svc.Create(context.Background(), req, tenantID)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("unknown adjustment type", func(t *testing.T) {
		req := validCreate()
		req.AdjustmentType = "multiplier"
		_, err := svc.Create(context.Background(), req, tenantID)
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("negative adjustment", func(t *testing.T) {
		req := validCreate()
		req.AdjustmentValue = -10
		_, err := svc.Create(context.Background(), req, tenantID)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("room from another property", func(t *testing.T) {
		req := validCreate()
		id := "11111111-2222-3333-4444-555555555555"
		req.RoomID = &id
		_, err := svc.Create(context.Background(), req, tenantID)
		assert.ErrorIs(t, err, ErrInvalidRoom)
	})
}

func TestUpdate_KeepsDatesConsistent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeProps{}, fakeRooms{})

	r, err := svc.Create(context.Background(), validCreate(), tenantID)
	require.NoError(t, err)

	bad := day(2026, 5, 1)
	_, err = svc.Update(context.Background(), r.ID, UpdateRequest{EndDate: &bad}, tenantID)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	good := day(2026, 10, 1)
	updated, err := svc.Update(context.Background(), r.ID, UpdateRequest{EndDate: &good}, tenantID)
	require.NoError(t, err)
	assert.Equal(t, good, updated.EndDate)
}

func TestDelete_OwnerOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeProps{}, fakeRooms{})

	r, err := svc.Create(context.Background(), validCreate(), tenantID)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), r.ID, otherID)
	assert.ErrorIs(t, err, property.ErrPermissionDenied)

	err = svc.Delete(context.Background(), r.ID, tenantID)
	assert.NoError(t, err)
}
