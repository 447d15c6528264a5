package pricing

import (
	"context"
	"time"

	"github.com/staylodge/staylodge-backend/internal/rate"
	"github.com/staylodge/staylodge-backend/internal/room"
)

type roomGetter interface {
	GetByID(ctx context.Context, id string) (*room.Room, error)
}

type rateLister interface {
	ListForStay(ctx context.Context, roomID, propertyID string, from, to time.Time) ([]*rate.PeakSeasonRate, error)
}

// Service computes stay totals from live room and rate data.
type Service struct {
	rooms roomGetter
	rates rateLister
}

func NewService(rooms roomGetter, rates rateLister) *Service {
	return &Service{rooms: rooms, rates: rates}
}

// QuoteStay returns the total price for a stay in the given room. Returns
// room.ErrNotFound when the room does not exist.
func (s *Service) QuoteStay(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
	rm, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}

	rates, err := s.rates.ListForStay(ctx, rm.ID, rm.PropertyID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	return Quote(rm.BasePrice, checkIn, checkOut, rates), nil
}
