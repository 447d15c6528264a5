package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/staylodge/staylodge-backend/internal/logger"
	"github.com/staylodge/staylodge-backend/internal/pkg/clock"
	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/room"
)

// CustomerDetails is the guest contact snapshot sent to the payment gateway.
type CustomerDetails struct {
	FullName    string
	Email       string
	PhoneNumber string
}

// PaymentGateway creates payment transactions for new orders. The returned
// token is handed to the client to open the gateway's payment page.
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, orderUID string, grossAmount int64, customer CustomerDetails, expiry time.Duration) (string, error)
}

// RoomLocker serializes concurrent order creation per room so the
// count-then-insert capacity check cannot race.
type RoomLocker interface {
	Lock(ctx context.Context, roomID string) error
	Unlock(ctx context.Context, roomID string) error
}

// Notifier delivers booking lifecycle notifications. Failures are logged and
// swallowed by the service; they never block or reverse a transition.
type Notifier interface {
	BookingCreated(ctx context.Context, b *Booking) error
	BookingConfirmed(ctx context.Context, b *Booking) error
	BookingRejected(ctx context.Context, b *Booking) error
	BookingCancelled(ctx context.Context, b *Booking) error
	CheckInReminder(ctx context.Context, b *Booking) error
}

type roomGetter interface {
	GetByID(ctx context.Context, id string) (*room.Room, error)
}

type propertyGetter interface {
	GetByID(ctx context.Context, id string) (*property.Property, error)
}

type stayQuoter interface {
	QuoteStay(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error)
}

type CreateRequest struct {
	UserID       string
	RoomID       string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Fullname     string
	Email        string
	PhoneNumber  string
}

type Service interface {
	// Create places a new order in pending_payment and returns it together
	// with the gateway transaction token.
	Create(ctx context.Context, req CreateRequest) (*Booking, string, error)
	GetByUID(ctx context.Context, orderUID, actorUserID string) (*Booking, error)
	ListForGuest(ctx context.Context, userID string, filter Filter) ([]*Booking, int, error)
	ListForTenant(ctx context.Context, ownerID string, filter Filter) ([]*Booking, int, error)

	AttachPaymentProof(ctx context.Context, orderUID, userID, proofURL string) (*Booking, error)
	// ApplyGatewayStatus maps a gateway transaction status onto the state
	// machine, idempotently. Reports whether a transition was applied.
	ApplyGatewayStatus(ctx context.Context, orderUID, transactionStatus string) (bool, error)
	Confirm(ctx context.Context, orderUID, tenantID string) (*Booking, error)
	Reject(ctx context.Context, orderUID, tenantID string) (*Booking, error)
	Complete(ctx context.Context, orderUID, tenantID string) (*Booking, error)
	Cancel(ctx context.Context, orderUID, actorUserID, reason string) (*Booking, error)

	// CancelExpired transitions every pending_payment booking past its
	// deadline to cancelled. Per-item failures are logged, not propagated.
	CancelExpired(ctx context.Context) (int, error)
	// RemindUpcomingCheckIns notifies guests whose confirmed stay starts
	// tomorrow.
	RemindUpcomingCheckIns(ctx context.Context) (int, error)
}

type service struct {
	repo          Repository
	rooms         roomGetter
	properties    propertyGetter
	quoter        stayQuoter
	gateway       PaymentGateway
	locker        RoomLocker
	notifier      Notifier
	clock         clock.Clock
	log           *logger.Logger
	paymentWindow time.Duration
}

func NewService(
	repo Repository,
	rooms roomGetter,
	properties propertyGetter,
	quoter stayQuoter,
	gateway PaymentGateway,
	locker RoomLocker,
	notifier Notifier,
	clk clock.Clock,
	log *logger.Logger,
	paymentWindow time.Duration,
) Service {
	return &service{
		repo:          repo,
		rooms:         rooms,
		properties:    properties,
		quoter:        quoter,
		gateway:       gateway,
		locker:        locker,
		notifier:      notifier,
		clock:         clk,
		log:           log,
		paymentWindow: paymentWindow,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, string, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, "", ErrInvalidDateRange
	}

	rm, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, "", ErrRoomNotFound
		}
		return nil, "", err
	}

	total, err := s.quoter.QuoteStay(ctx, rm.ID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, "", err
	}

	now := s.clock.Now()
	b := &Booking{
		UID:             NewOrderUID(),
		RoomID:          rm.ID,
		PropertyID:      rm.PropertyID,
		UserID:          req.UserID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Fullname:        strings.TrimSpace(req.Fullname),
		Email:           strings.TrimSpace(req.Email),
		PhoneNumber:     strings.TrimSpace(req.PhoneNumber),
		TotalPrice:      total,
		Status:          StatusPendingPayment,
		PaymentMethod:   "gateway",
		PaymentDeadline: now.Add(s.paymentWindow),
	}

	// The gateway call happens before the transaction opens: the token must
	// be persisted with the booking, and we must not hold database locks
	// across slow network I/O.
	token, err := s.gateway.CreateTransaction(ctx, b.UID, b.TotalPrice, CustomerDetails{
		FullName:    b.Fullname,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
	}, s.paymentWindow)
	if err != nil {
		s.log.LogPayment("create-transaction", b.UID, fmt.Sprintf("gateway call failed: %v", err))
		return nil, "", ErrGatewayUnavailable
	}
	b.TransactionID = &token

	// Per-room lock closes the check-then-insert race: two concurrent
	// requests for the last unit serialize here.
	if err := s.locker.Lock(ctx, rm.ID); err != nil {
		return nil, "", fmt.Errorf("acquire room lock failed: %w", err)
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), rm.ID); err != nil {
			s.log.Warn("BOOKING", fmt.Sprintf("release room lock for %s failed: %v", rm.ID, err))
		}
	}()

	if err := s.repo.CreateWithCapacityCheck(ctx, b, rm.TotalUnits); err != nil {
		return nil, "", err
	}

	s.log.LogBooking("create", b.UID, fmt.Sprintf("room %s, %s to %s, total %d",
		b.RoomID, b.CheckInDate.Format("2006-01-02"), b.CheckOutDate.Format("2006-01-02"), b.TotalPrice))

	if err := s.notifier.BookingCreated(ctx, b); err != nil {
		s.log.Warn("BOOKING", fmt.Sprintf("created notification for %s failed: %v", b.UID, err))
	}

	return b, token, nil
}

// getOwned loads a booking and verifies the actor is either the booking
// guest or the owner of the booked property.
func (s *service) getOwned(ctx context.Context, orderUID, actorUserID string) (*Booking, error) {
	uid, err := ParseOrderUID(orderUID)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if b.UserID == actorUserID {
		return b, nil
	}

	p, err := s.properties.GetByID(ctx, b.PropertyID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorUserID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

// getForTenant loads a booking and verifies the actor owns the property.
func (s *service) getForTenant(ctx context.Context, orderUID, tenantID string) (*Booking, error) {
	uid, err := ParseOrderUID(orderUID)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	p, err := s.properties.GetByID(ctx, b.PropertyID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != tenantID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) GetByUID(ctx context.Context, orderUID, actorUserID string) (*Booking, error) {
	return s.getOwned(ctx, orderUID, actorUserID)
}

func (s *service) ListForGuest(ctx context.Context, userID string, filter Filter) ([]*Booking, int, error) {
	filter.UserID = userID
	filter.OwnerID = ""
	return s.repo.List(ctx, filter)
}

func (s *service) ListForTenant(ctx context.Context, ownerID string, filter Filter) ([]*Booking, int, error) {
	filter.OwnerID = ownerID
	filter.UserID = ""
	return s.repo.List(ctx, filter)
}

func (s *service) AttachPaymentProof(ctx context.Context, orderUID, userID, proofURL string) (*Booking, error) {
	uid, err := ParseOrderUID(orderUID)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	if b.Status != StatusPendingPayment {
		return nil, ErrNotPendingPayment
	}

	now := s.clock.Now()
	// Defensive re-check: an expired order the sweeper hasn't reached yet
	// must not accept a manual payment.
	if now.After(b.PaymentDeadline) {
		return nil, ErrDeadlinePassed
	}

	b.Status = StatusProcessing
	b.PaymentProof = &proofURL
	b.PaidAt = &now

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.LogBooking("payment-proof", b.UID, "moved to processing")
	return b, nil
}

func (s *service) ApplyGatewayStatus(ctx context.Context, orderUID, transactionStatus string) (bool, error) {
	uid, err := ParseOrderUID(orderUID)
	if err != nil {
		return false, err
	}

	b, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return false, err
	}

	switch transactionStatus {
	case "settlement", "capture":
		applied, err := s.repo.UpdateStatusIf(ctx, b.ID, StatusPendingPayment, map[string]any{
			"status":  StatusProcessing,
			"paid_at": s.clock.Now(),
		})
		if err != nil {
			return false, err
		}
		if applied {
			s.log.LogPayment(transactionStatus, b.UID, "moved to processing")
		} else {
			s.log.LogPayment(transactionStatus, b.UID, "already past pending_payment, no-op")
		}
		return applied, nil

	case "expire", "cancel", "deny":
		reason := "payment " + transactionStatus
		applied, err := s.repo.UpdateStatusIf(ctx, b.ID, StatusPendingPayment, map[string]any{
			"status":              StatusCancelled,
			"cancellation_reason": reason,
		})
		if err != nil {
			return false, err
		}
		if applied {
			s.log.LogPayment(transactionStatus, b.UID, "moved to cancelled")
		} else {
			s.log.LogPayment(transactionStatus, b.UID, "already past pending_payment, no-op")
		}
		return applied, nil

	default:
		s.log.LogPayment(transactionStatus, b.UID, "unrecognized transaction status, no-op")
		return false, nil
	}
}

func (s *service) Confirm(ctx context.Context, orderUID, tenantID string) (*Booking, error) {
	b, err := s.getForTenant(ctx, orderUID, tenantID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusProcessing {
		return nil, ErrNotProcessing
	}

	b.Status = StatusConfirmed
	b.CancellationReason = nil

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.LogBooking("confirm", b.UID, "moved to confirmed")

	if err := s.notifier.BookingConfirmed(ctx, b); err != nil {
		s.log.Warn("BOOKING", fmt.Sprintf("confirmation notification for %s failed: %v", b.UID, err))
	}
	return b, nil
}

func (s *service) Reject(ctx context.Context, orderUID, tenantID string) (*Booking, error) {
	b, err := s.getForTenant(ctx, orderUID, tenantID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusProcessing {
		return nil, ErrNotProcessing
	}

	b.Status = StatusPendingPayment
	b.PaymentProof = nil
	b.PaidAt = nil
	b.PaymentDeadline = s.clock.Now().Add(s.paymentWindow)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.LogBooking("reject", b.UID, "returned to pending_payment")

	if err := s.notifier.BookingRejected(ctx, b); err != nil {
		s.log.Warn("BOOKING", fmt.Sprintf("rejection notification for %s failed: %v", b.UID, err))
	}
	return b, nil
}

func (s *service) Complete(ctx context.Context, orderUID, tenantID string) (*Booking, error) {
	b, err := s.getForTenant(ctx, orderUID, tenantID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusConfirmed {
		return nil, ErrNotConfirmed
	}
	if s.clock.Now().Before(b.CheckOutDate) {
		return nil, ErrNotCheckedOut
	}

	b.Status = StatusCompleted

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.LogBooking("complete", b.UID, "moved to completed")
	return b, nil
}

func (s *service) Cancel(ctx context.Context, orderUID, actorUserID, reason string) (*Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	b, err := s.getOwned(ctx, orderUID, actorUserID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPendingPayment {
		return nil, ErrNotPendingPayment
	}

	b.Status = StatusCancelled
	b.CancellationReason = &reason

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.LogBooking("cancel", b.UID, "moved to cancelled: "+reason)

	if err := s.notifier.BookingCancelled(ctx, b); err != nil {
		s.log.Warn("BOOKING", fmt.Sprintf("cancellation notification for %s failed: %v", b.UID, err))
	}
	return b, nil
}

func (s *service) CancelExpired(ctx context.Context) (int, error) {
	now := s.clock.Now()
	expired, err := s.repo.ListExpiredPending(ctx, now)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range expired {
		applied, err := s.repo.UpdateStatusIf(ctx, b.ID, StatusPendingPayment, map[string]any{
			"status":              StatusCancelled,
			"cancellation_reason": "payment deadline expired",
		})
		if err != nil {
			s.log.Error("SWEEPER", fmt.Sprintf("auto-cancel %s failed: %v", b.UID, err))
			continue
		}
		if applied {
			cancelled++
			s.log.LogSweep("auto-cancel", fmt.Sprintf("%s cancelled (deadline %s)", b.UID, b.PaymentDeadline.Format(time.RFC3339)))
		}
	}
	return cancelled, nil
}

func (s *service) RemindUpcomingCheckIns(ctx context.Context) (int, error) {
	now := s.clock.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	upcoming, err := s.repo.ListUpcomingCheckIns(ctx, tomorrow, tomorrow.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}

	reminded := 0
	for _, b := range upcoming {
		if err := s.notifier.CheckInReminder(ctx, b); err != nil {
			s.log.Warn("SWEEPER", fmt.Sprintf("check-in reminder for %s failed: %v", b.UID, err))
			continue
		}
		reminded++
	}
	return reminded, nil
}
