package review

import (
	"context"
	"testing"
	"time"

	"github.com/staylodge/staylodge-backend/internal/booking"
	"github.com/staylodge/staylodge-backend/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	guestID = "6d2f52a2-8c6e-4b57-9f36-0c1f6f5a1a01"
	otherID = "0a6f1f31-2f42-4f6e-8f90-aa17c2f8ee03"
	propID  = "3f2b93c6-b1d5-4c9a-8af7-14e2f1c4bb04"
)

type fakeRepo struct {
	created []*Review
	byOrder map[int64]bool
}

func (f *fakeRepo) Create(ctx context.Context, rv *Review) error {
	if f.byOrder == nil {
		f.byOrder = make(map[int64]bool)
	}
	if f.byOrder[rv.BookingID] {
		return ErrAlreadyReviewed
	}
	f.byOrder[rv.BookingID] = true
	rv.ID = "review-1"
	rv.CreatedAt = time.Now()
	f.created = append(f.created, rv)
	return nil
}

func (f *fakeRepo) ListByProperty(ctx context.Context, propertyID string) ([]*Review, error) {
	return f.created, nil
}

func (f *fakeRepo) AverageRating(ctx context.Context, propertyID string) (float64, int, error) {
	return 0, 0, nil
}

type fakeBookings struct {
	b *booking.Booking
}

func (f *fakeBookings) GetByUID(ctx context.Context, uid string) (*booking.Booking, error) {
	if f.b == nil || f.b.UID != uid {
		return nil, booking.ErrNotFound
	}
	return f.b, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func completedBooking() *booking.Booking {
	return &booking.Booking{
		ID:           42,
		UID:          booking.NewOrderUID(),
		PropertyID:   propID,
		UserID:       guestID,
		CheckInDate:  day(2026, 1, 10),
		CheckOutDate: day(2026, 1, 12),
		Status:       booking.StatusCompleted,
	}
}

func TestCreate(t *testing.T) {
	b := completedBooking()
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeBookings{b: b}, clock.Fixed{T: day(2026, 1, 15)})

	rv, err := svc.Create(context.Background(), CreateRequest{
		OrderUID: b.UID,
		UserID:   guestID,
		Rating:   5,
		Comment:  "great stay",
	})
	require.NoError(t, err)
	assert.Equal(t, b.ID, rv.BookingID)
	assert.Equal(t, propID, rv.PropertyID)
}

func TestCreate_SecondReviewConflicts(t *testing.T) {
	b := completedBooking()
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeBookings{b: b}, clock.Fixed{T: day(2026, 1, 15)})

	req := CreateRequest{OrderUID: b.UID, UserID: guestID, Rating: 4}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreate_Preconditions(t *testing.T) {
	now := day(2026, 1, 15)

	t.Run("not the booking guest", func(t *testing.T) {
		b := completedBooking()
		svc := NewService(&fakeRepo{}, &fakeBookings{b: b}, clock.Fixed{T: now})

		_, err := svc.Create(context.Background(), CreateRequest{OrderUID: b.UID, UserID: otherID, Rating: 4})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("not completed", func(t *testing.T) {
		b := completedBooking()
		b.Status = booking.StatusConfirmed
		svc := NewService(&fakeRepo{}, &fakeBookings{b: b}, clock.Fixed{T: now})

		_, err := svc.Create(context.Background(), CreateRequest{OrderUID: b.UID, UserID: guestID, Rating: 4})
		assert.ErrorIs(t, err, ErrNotCompleted)
	})

	t.Run("before checkout", func(t *testing.T) {
		b := completedBooking()
		svc := NewService(&fakeRepo{}, &fakeBookings{b: b}, clock.Fixed{T: day(2026, 1, 11)})

		_, err := svc.Create(context.Background(), CreateRequest{OrderUID: b.UID, UserID: guestID, Rating: 4})
		assert.ErrorIs(t, err, ErrNotCheckedOut)
	})

	t.Run("rating out of range", func(t *testing.T) {
		b := completedBooking()
		svc := NewService(&fakeRepo{}, &fakeBookings{b: b}, clock.Fixed{T: now})

		_, err := svc.Create(context.Background(), CreateRequest{OrderUID: b.UID, UserID: guestID, Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("malformed order id", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeBookings{}, clock.Fixed{T: now})

		_, err := svc.Create(context.Background(), CreateRequest{OrderUID: "bogus", UserID: guestID, Rating: 4})
		assert.ErrorIs(t, err, booking.ErrInvalidOrderID)
	})
}
