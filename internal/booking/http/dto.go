package http

import (
	"time"

	"github.com/staylodge/staylodge-backend/internal/booking"
	"github.com/staylodge/staylodge-backend/internal/pkg/request"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID       string `json:"room_id" binding:"required,uuid"`
	CheckInDate  string `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	Fullname     string `json:"fullname" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellation_reason" binding:"required"`
}

type ListBookingsRequest struct {
	request.ListParams
	Status     string `form:"status" binding:"omitempty,oneof=pending_payment processing confirmed completed cancelled"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
}

type BookingResponse struct {
	ID                 int64      `json:"booking_id"`
	OrderUID           string     `json:"order_uid"`
	RoomID             string     `json:"room_id"`
	PropertyID         string     `json:"property_id"`
	CheckInDate        string     `json:"check_in_date"`
	CheckOutDate       string     `json:"check_out_date"`
	Fullname           string     `json:"fullname"`
	Email              string     `json:"email"`
	PhoneNumber        string     `json:"phone_number"`
	TotalPrice         int64      `json:"total_price"`
	Status             string     `json:"status"`
	PaymentMethod      string     `json:"payment_method"`
	PaymentProof       *string    `json:"payment_proof"`
	PaymentDeadline    time.Time  `json:"payment_deadline"`
	PaidAt             *time.Time `json:"paid_at"`
	CancellationReason *string    `json:"cancellation_reason"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CreateBookingResponse carries the new order plus the gateway token the
// client needs to open the payment page.
type CreateBookingResponse struct {
	Order            BookingResponse `json:"order"`
	TransactionToken string          `json:"transaction_token"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		OrderUID:           b.UID,
		RoomID:             b.RoomID,
		PropertyID:         b.PropertyID,
		CheckInDate:        b.CheckInDate.Format(dateLayout),
		CheckOutDate:       b.CheckOutDate.Format(dateLayout),
		Fullname:           b.Fullname,
		Email:              b.Email,
		PhoneNumber:        b.PhoneNumber,
		TotalPrice:         b.TotalPrice,
		Status:             b.Status,
		PaymentMethod:      b.PaymentMethod,
		PaymentProof:       b.PaymentProof,
		PaymentDeadline:    b.PaymentDeadline,
		PaidAt:             b.PaidAt,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
