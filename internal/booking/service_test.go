package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/staylodge/staylodge-backend/internal/logger"
	"github.com/staylodge/staylodge-backend/internal/pkg/clock"
	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === fakes ===

type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	byUID  map[string]*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUID: make(map[string]*Booking)}
}

func (r *fakeRepo) add(b *Booking) *Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	copied := *b
	r.byUID[b.UID] = &copied
	return &copied
}

func (r *fakeRepo) CreateWithCapacityCheck(ctx context.Context, b *Booking, totalUnits int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	overlapping := 0
	for _, existing := range r.byUID {
		if existing.RoomID != b.RoomID {
			continue
		}
		if existing.Status == StatusCancelled || existing.Status == StatusCompleted {
			continue
		}
		if !existing.CheckInDate.After(b.CheckOutDate) && !existing.CheckOutDate.Before(b.CheckInDate) {
			overlapping++
		}
	}
	if overlapping >= totalUnits {
		return ErrRoomFullyBooked
	}

	r.nextID++
	b.ID = r.nextID
	copied := *b
	r.byUID[b.UID] = &copied
	return nil
}

func (r *fakeRepo) GetByUID(ctx context.Context, uid string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byUID[uid]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.byUID {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUID[b.UID]; !ok {
		return ErrNotFound
	}
	copied := *b
	r.byUID[b.UID] = &copied
	return nil
}

func (r *fakeRepo) UpdateStatusIf(ctx context.Context, id int64, fromStatus string, set map[string]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byUID {
		if b.ID != id {
			continue
		}
		if b.Status != fromStatus {
			return false, nil
		}
		for column, value := range set {
			switch column {
			case "status":
				b.Status = value.(string)
			case "paid_at":
				t := value.(time.Time)
				b.PaidAt = &t
			case "cancellation_reason":
				s := value.(string)
				b.CancellationReason = &s
			}
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeRepo) ListExpiredPending(ctx context.Context, now time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.byUID {
		if b.Status == StatusPendingPayment && b.PaymentDeadline.Before(now) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListUpcomingCheckIns(ctx context.Context, from, to time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.byUID {
		if b.Status != StatusConfirmed {
			continue
		}
		if !b.CheckInDate.Before(from) && b.CheckInDate.Before(to) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeRooms struct {
	rooms map[string]*room.Room
}

func (f *fakeRooms) GetByID(ctx context.Context, id string) (*room.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return rm, nil
}

type fakeProperties struct {
	props map[string]*property.Property
}

func (f *fakeProperties) GetByID(ctx context.Context, id string) (*property.Property, error) {
	p, ok := f.props[id]
	if !ok {
		return nil, property.ErrNotFound
	}
	return p, nil
}

// fakeQuoter prices every night at the room's base price.
type fakeQuoter struct {
	rooms *fakeRooms
}

func (f *fakeQuoter) QuoteStay(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
	rm, err := f.rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	return rm.BasePrice * nights, nil
}

type fakeGateway struct {
	calls atomic.Int32
	fail  bool
}

func (f *fakeGateway) CreateTransaction(ctx context.Context, orderUID string, grossAmount int64, customer CustomerDetails, expiry time.Duration) (string, error) {
	n := f.calls.Add(1)
	if f.fail {
		return "", errors.New("gateway down")
	}
	return fmt.Sprintf("tok-%d", n), nil
}

type fakeLocker struct {
	mu sync.Mutex
}

func (f *fakeLocker) Lock(ctx context.Context, roomID string) error {
	f.mu.Lock()
	return nil
}

func (f *fakeLocker) Unlock(ctx context.Context, roomID string) error {
	f.mu.Unlock()
	return nil
}

type fakeNotifier struct {
	confirmed int
	rejected  int
	cancelled int
	created   int
	reminders int
	fail      bool
}

func (f *fakeNotifier) err() error {
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (f *fakeNotifier) BookingCreated(ctx context.Context, b *Booking) error {
	f.created++
	return f.err()
}

func (f *fakeNotifier) BookingConfirmed(ctx context.Context, b *Booking) error {
	f.confirmed++
	return f.err()
}

func (f *fakeNotifier) BookingRejected(ctx context.Context, b *Booking) error {
	f.rejected++
	return f.err()
}

func (f *fakeNotifier) BookingCancelled(ctx context.Context, b *Booking) error {
	f.cancelled++
	return f.err()
}

func (f *fakeNotifier) CheckInReminder(ctx context.Context, b *Booking) error {
	f.reminders++
	return f.err()
}

// === fixtures ===

const (
	guestID  = "6d2f52a2-8c6e-4b57-9f36-0c1f6f5a1a01"
	tenantID = "9b1de2c4-7a11-4f0b-bb62-58f0a4f3dd02"
	otherID  = "0a6f1f31-2f42-4f6e-8f90-aa17c2f8ee03"
	propID   = "3f2b93c6-b1d5-4c9a-8af7-14e2f1c4bb04"
	roomID   = "5c8a7d90-43ef-4f4a-9ad2-77d91a02cc05"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	svc      Service
	repo     *fakeRepo
	gateway  *fakeGateway
	notifier *fakeNotifier
	now      time.Time
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	rooms := &fakeRooms{rooms: map[string]*room.Room{
		roomID: {ID: roomID, PropertyID: propID, BasePrice: 500_000, TotalUnits: 1},
	}}
	props := &fakeProperties{props: map[string]*property.Property{
		propID: {ID: propID, OwnerID: tenantID},
	}}
	repo := newFakeRepo()
	gateway := &fakeGateway{}
	notifier := &fakeNotifier{}

	svc := NewService(
		repo, rooms, props, &fakeQuoter{rooms: rooms}, gateway, &fakeLocker{},
		notifier, clock.Fixed{T: now}, logger.New(), 2*time.Hour,
	)

	return &testEnv{svc: svc, repo: repo, gateway: gateway, notifier: notifier, now: now}
}

func (e *testEnv) createOrder(t *testing.T, checkIn, checkOut time.Time) *Booking {
	t.Helper()
	b, token, err := e.svc.Create(context.Background(), CreateRequest{
		UserID:       guestID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Fullname:     "Jane Roe",
		Email:        "jane@example.com",
		PhoneNumber:  "+620000000001",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return b
}

// === tests ===

func TestCreate_NewOrder(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	assert.Equal(t, StatusPendingPayment, b.Status)
	assert.Equal(t, int64(1_000_000), b.TotalPrice)
	assert.Equal(t, env.now.Add(2*time.Hour), b.PaymentDeadline)
	require.NotNil(t, b.TransactionID)
	assert.Contains(t, b.UID, "ORDER-")
}

func TestCreate_RoomFullyBooked(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, _, err := env.svc.Create(context.Background(), CreateRequest{
		UserID:       otherID,
		RoomID:       roomID,
		CheckInDate:  day(2026, 1, 11),
		CheckOutDate: day(2026, 1, 13),
		Fullname:     "John Doe",
		Email:        "john@example.com",
		PhoneNumber:  "+620000000002",
	})
	assert.ErrorIs(t, err, ErrRoomFullyBooked)
}

func TestCreate_CancelledBookingFreesCapacity(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))
	_, err := env.svc.Cancel(context.Background(), b.UID, guestID, "changed my mind")
	require.NoError(t, err)

	second := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))
	assert.Equal(t, StatusPendingPayment, second.Status)
}

func TestCreate_ConcurrentCreatesRespectCapacity(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	// Five simultaneous requests for a single-unit room: exactly one may win.
	var wg sync.WaitGroup
	var successes, fullyBooked atomic.Int32

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := env.svc.Create(context.Background(), CreateRequest{
				UserID:       guestID,
				RoomID:       roomID,
				CheckInDate:  day(2026, 1, 10),
				CheckOutDate: day(2026, 1, 12),
				Fullname:     "Jane Roe",
				Email:        "jane@example.com",
				PhoneNumber:  "+620000000001",
			})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, ErrRoomFullyBooked):
				fullyBooked.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(4), fullyBooked.Load())
}

func TestCreate_InvalidDateRange(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	_, _, err := env.svc.Create(context.Background(), CreateRequest{
		UserID:       guestID,
		RoomID:       roomID,
		CheckInDate:  day(2026, 1, 12),
		CheckOutDate: day(2026, 1, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Zero(t, env.gateway.calls.Load())
}

func TestCreate_RoomNotFound(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	_, _, err := env.svc.Create(context.Background(), CreateRequest{
		UserID:       guestID,
		RoomID:       "b2c3d4e5-0000-0000-0000-000000000000",
		CheckInDate:  day(2026, 1, 10),
		CheckOutDate: day(2026, 1, 12),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreate_GatewayFailure(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	env.gateway.fail = true

	_, _, err := env.svc.Create(context.Background(), CreateRequest{
		UserID:       guestID,
		RoomID:       roomID,
		CheckInDate:  day(2026, 1, 10),
		CheckOutDate: day(2026, 1, 12),
	})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)

	// Nothing persisted when the gateway call fails.
	bookings, _, err := env.repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestAttachPaymentProof(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	updated, err := env.svc.AttachPaymentProof(context.Background(), b.UID, guestID, "/uploads/payments/proof.jpg")
	require.NoError(t, err)

	assert.Equal(t, StatusProcessing, updated.Status)
	require.NotNil(t, updated.PaymentProof)
	require.NotNil(t, updated.PaidAt)
	assert.Equal(t, env.now, *updated.PaidAt)
}

func TestAttachPaymentProof_WrongOwner(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.AttachPaymentProof(context.Background(), b.UID, otherID, "/uploads/payments/proof.jpg")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAttachPaymentProof_DeadlinePassed(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	// Rebuild the service with a clock past the deadline; the booking is
	// expired but not yet swept.
	late := newTestEnv(t, env.now.Add(3*time.Hour))
	late.repo.add(b)

	_, err := late.svc.AttachPaymentProof(context.Background(), b.UID, guestID, "/uploads/payments/proof.jpg")
	assert.ErrorIs(t, err, ErrDeadlinePassed)
}

func TestApplyGatewayStatus_SettlementIsIdempotent(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	applied, err := env.svc.ApplyGatewayStatus(context.Background(), b.UID, "settlement")
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := env.repo.GetByUID(context.Background(), b.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
	require.NotNil(t, got.PaidAt)

	// Duplicate delivery is a no-op.
	applied, err = env.svc.ApplyGatewayStatus(context.Background(), b.UID, "settlement")
	require.NoError(t, err)
	assert.False(t, applied)

	got, err = env.repo.GetByUID(context.Background(), b.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
}

func TestApplyGatewayStatus_Expire(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	applied, err := env.svc.ApplyGatewayStatus(context.Background(), b.UID, "expire")
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := env.repo.GetByUID(context.Background(), b.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	require.NotNil(t, got.CancellationReason)
}

func TestApplyGatewayStatus_UnknownStatusIsNoOp(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	applied, err := env.svc.ApplyGatewayStatus(context.Background(), b.UID, "refund")
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := env.repo.GetByUID(context.Background(), b.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusPendingPayment, got.Status)
}

func TestApplyGatewayStatus_InvalidOrderID(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))

	_, err := env.svc.ApplyGatewayStatus(context.Background(), "not-an-order", "settlement")
	assert.ErrorIs(t, err, ErrInvalidOrderID)
}

func TestConfirm(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.AttachPaymentProof(context.Background(), b.UID, guestID, "/uploads/payments/proof.jpg")
	require.NoError(t, err)

	confirmed, err := env.svc.Confirm(context.Background(), b.UID, tenantID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)
	assert.Nil(t, confirmed.CancellationReason)
	assert.Equal(t, 1, env.notifier.confirmed)
}

func TestConfirm_WrongStatus(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.Confirm(context.Background(), b.UID, tenantID)
	assert.ErrorIs(t, err, ErrNotProcessing)

	got, err := env.repo.GetByUID(context.Background(), b.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusPendingPayment, got.Status)
}

func TestConfirm_NotOwner(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.Confirm(context.Background(), b.UID, otherID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestConfirm_NotificationFailureIsSwallowed(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	env.notifier.fail = true
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.AttachPaymentProof(context.Background(), b.UID, guestID, "/uploads/payments/proof.jpg")
	require.NoError(t, err)

	confirmed, err := env.svc.Confirm(context.Background(), b.UID, tenantID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)
}

func TestReject_ResetsProofAndDeadline(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.AttachPaymentProof(context.Background(), b.UID, guestID, "/uploads/payments/proof.jpg")
	require.NoError(t, err)

	rejected, err := env.svc.Reject(context.Background(), b.UID, tenantID)
	require.NoError(t, err)

	assert.Equal(t, StatusPendingPayment, rejected.Status)
	assert.Nil(t, rejected.PaymentProof)
	assert.Nil(t, rejected.PaidAt)
	assert.Equal(t, env.now.Add(2*time.Hour), rejected.PaymentDeadline)
	assert.Equal(t, 1, env.notifier.rejected)
}

func TestComplete_CheckoutBoundary(t *testing.T) {
	checkOut := day(2026, 1, 12)

	setup := func(t *testing.T, now time.Time) (*testEnv, *Booking) {
		env := newTestEnv(t, now)
		b := env.repo.add(&Booking{
			UID:          NewOrderUID(),
			RoomID:       roomID,
			PropertyID:   propID,
			UserID:       guestID,
			CheckInDate:  day(2026, 1, 10),
			CheckOutDate: checkOut,
			Status:       StatusConfirmed,
		})
		return env, b
	}

	t.Run("exactly at checkout midnight succeeds", func(t *testing.T) {
		env, b := setup(t, checkOut)

		completed, err := env.svc.Complete(context.Background(), b.UID, tenantID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, completed.Status)
	})

	t.Run("one millisecond before fails", func(t *testing.T) {
		env, b := setup(t, checkOut.Add(-time.Millisecond))

		_, err := env.svc.Complete(context.Background(), b.UID, tenantID)
		assert.ErrorIs(t, err, ErrNotCheckedOut)

		got, err := env.repo.GetByUID(context.Background(), b.UID)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)
	})
}

func TestComplete_WrongStatus(t *testing.T) {
	env := newTestEnv(t, day(2026, 2, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.Complete(context.Background(), b.UID, tenantID)
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestCancel_RequiresReason(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.Cancel(context.Background(), b.UID, guestID, "  ")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestCancel_ByOwningTenant(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	cancelled, err := env.svc.Cancel(context.Background(), b.UID, tenantID, "room under maintenance")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
}

func TestCancel_ByStranger(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.Cancel(context.Background(), b.UID, otherID, "nope")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCancel_WrongStatus(t *testing.T) {
	env := newTestEnv(t, day(2026, 1, 1))
	b := env.createOrder(t, day(2026, 1, 10), day(2026, 1, 12))

	_, err := env.svc.AttachPaymentProof(context.Background(), b.UID, guestID, "/uploads/payments/proof.jpg")
	require.NoError(t, err)

	_, err = env.svc.Cancel(context.Background(), b.UID, guestID, "too late")
	assert.ErrorIs(t, err, ErrNotPendingPayment)
}

func TestCancelExpired(t *testing.T) {
	now := day(2026, 1, 1).Add(12 * time.Hour)
	env := newTestEnv(t, now)

	expired := env.repo.add(&Booking{
		UID:             NewOrderUID(),
		RoomID:          roomID,
		PropertyID:      propID,
		UserID:          guestID,
		Status:          StatusPendingPayment,
		PaymentDeadline: now.Add(-time.Minute),
	})
	fresh := env.repo.add(&Booking{
		UID:             NewOrderUID(),
		RoomID:          roomID,
		PropertyID:      propID,
		UserID:          guestID,
		Status:          StatusPendingPayment,
		PaymentDeadline: now.Add(time.Hour),
	})

	count, err := env.svc.CancelExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := env.repo.GetByUID(context.Background(), expired.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	got, err = env.repo.GetByUID(context.Background(), fresh.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusPendingPayment, got.Status)
}

func TestRemindUpcomingCheckIns(t *testing.T) {
	now := day(2026, 1, 9).Add(8 * time.Hour)
	env := newTestEnv(t, now)

	env.repo.add(&Booking{
		UID:          NewOrderUID(),
		RoomID:       roomID,
		PropertyID:   propID,
		UserID:       guestID,
		CheckInDate:  day(2026, 1, 10),
		CheckOutDate: day(2026, 1, 12),
		Status:       StatusConfirmed,
	})
	env.repo.add(&Booking{
		UID:          NewOrderUID(),
		RoomID:       roomID,
		PropertyID:   propID,
		UserID:       guestID,
		CheckInDate:  day(2026, 1, 20),
		CheckOutDate: day(2026, 1, 22),
		Status:       StatusConfirmed,
	})

	count, err := env.svc.RemindUpcomingCheckIns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, env.notifier.reminders)
}

func TestParseOrderUID(t *testing.T) {
	uid := NewOrderUID()

	parsed, err := ParseOrderUID(uid)
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)

	for _, bad := range []string{"", "ORDER-", "ORDER-not-a-uuid", "TICKET-6d2f52a2-8c6e-4b57-9f36-0c1f6f5a1a01"} {
		_, err := ParseOrderUID(bad)
		assert.ErrorIs(t, err, ErrInvalidOrderID, bad)
	}
}
