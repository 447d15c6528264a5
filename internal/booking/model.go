package booking

import (
	"net/http"
	"time"

	"github.com/staylodge/staylodge-backend/internal/pkg/apperror"
)

// Booking statuses. pending_payment is the initial state; cancelled and
// completed are terminal.
const (
	StatusPendingPayment = "pending_payment"
	StatusProcessing     = "processing"
	StatusConfirmed      = "confirmed"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "order not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidOrderID   = apperror.New(http.StatusBadRequest, "invalid order id")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrRoomFullyBooked  = apperror.New(http.StatusBadRequest, "room is fully booked for the selected dates")
	ErrDeadlinePassed   = apperror.New(http.StatusBadRequest, "payment deadline has passed")
	ErrReasonRequired   = apperror.New(http.StatusBadRequest, "cancellation_reason is required")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")

	// Wrong-status conflicts name the state the transition requires.
	ErrNotPendingPayment = apperror.New(http.StatusConflict, "order must be in pending_payment status")
	ErrNotProcessing     = apperror.New(http.StatusConflict, "order must be in processing status")
	ErrNotConfirmed      = apperror.New(http.StatusConflict, "order must be in confirmed status")
	ErrNotCheckedOut     = apperror.New(http.StatusBadRequest, "order cannot be completed before the check-out date")

	ErrGatewayUnavailable = apperror.New(http.StatusBadGateway, "payment gateway is unavailable")
)

// Booking is a guest's reservation of a room for a date range. Guest contact
// fields are snapshotted at creation and stay independent of the user account.
// TotalPrice is likewise a point-in-time snapshot; later rate changes never
// touch it.
type Booking struct {
	ID                 int64
	UID                string // ORDER-<uuid>, used client-facing and as the gateway order_id
	RoomID             string
	PropertyID         string
	UserID             string
	CheckInDate        time.Time // date only
	CheckOutDate       time.Time // date only
	Fullname           string
	Email              string
	PhoneNumber        string
	TotalPrice         int64
	Status             string
	PaymentMethod      string
	PaymentProof       *string
	TransactionID      *string
	PaymentDeadline    time.Time
	PaidAt             *time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID     string
	OwnerID    string // filter to bookings on properties owned by this tenant
	PropertyID string
	Status     string
	Page       int
	PageSize   int
}
