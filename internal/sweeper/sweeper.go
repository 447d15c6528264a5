package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/staylodge/staylodge-backend/internal/logger"
)

// bookingSweeps is the slice of the booking service the sweeper drives.
type bookingSweeps interface {
	CancelExpired(ctx context.Context) (int, error)
	RemindUpcomingCheckIns(ctx context.Context) (int, error)
}

// Sweeper periodically auto-cancels expired unpaid orders and sends
// check-in reminders. The interesting logic lives in the booking service;
// this is only the timer.
type Sweeper struct {
	bookings bookingSweeps
	interval time.Duration
	log      *logger.Logger
}

func New(bookings bookingSweeps, interval time.Duration, log *logger.Logger) *Sweeper {
	return &Sweeper{
		bookings: bookings,
		interval: interval,
		log:      log,
	}
}

// Run blocks until ctx is cancelled. It sweeps once at start, then on every
// tick. A booking past its deadline therefore stays pending_payment at most
// one interval before it is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.LogSweep("shutdown", "sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cancelled, err := s.bookings.CancelExpired(ctx)
	if err != nil {
		s.log.Error("SWEEPER", fmt.Sprintf("auto-cancel sweep failed: %v", err))
	} else if cancelled > 0 {
		s.log.LogSweep("auto-cancel", fmt.Sprintf("cancelled %d expired orders", cancelled))
	}

	reminded, err := s.bookings.RemindUpcomingCheckIns(ctx)
	if err != nil {
		s.log.Error("SWEEPER", fmt.Sprintf("reminder sweep failed: %v", err))
	} else if reminded > 0 {
		s.log.LogSweep("reminders", fmt.Sprintf("sent %d check-in reminders", reminded))
	}
}
