package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staylodge/staylodge-backend/internal/booking"
)

const dateLayout = "2006-01-02"

// Notifier implements booking.Notifier: each lifecycle change sends the
// guest an email and publishes a Kafka event. Either half may be nil when
// the backing service is not configured. The booking service logs and
// swallows the returned errors; a dead SMTP server never blocks a
// transition.
type Notifier struct {
	mailer   *Mailer
	producer *EventProducer
}

func NewNotifier(mailer *Mailer, producer *EventProducer) *Notifier {
	return &Notifier{
		mailer:   mailer,
		producer: producer,
	}
}

func (n *Notifier) notify(ctx context.Context, event string, b *booking.Booking, subject, body string) error {
	var errs []error

	if n.mailer != nil {
		if err := n.mailer.Send(b.Email, subject, body); err != nil {
			errs = append(errs, err)
		}
	}

	if n.producer != nil {
		err := n.producer.Publish(ctx, BookingEvent{
			Event:        event,
			OrderUID:     b.UID,
			RoomID:       b.RoomID,
			PropertyID:   b.PropertyID,
			UserID:       b.UserID,
			Status:       b.Status,
			TotalPrice:   b.TotalPrice,
			CheckInDate:  b.CheckInDate.Format(dateLayout),
			CheckOutDate: b.CheckOutDate.Format(dateLayout),
			OccurredAt:   time.Now().UTC(),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (n *Notifier) BookingCreated(ctx context.Context, b *booking.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s is reserved. Please complete the payment of %d before %s to keep it.\n",
		b.Fullname, b.UID, b.TotalPrice, b.PaymentDeadline.Format(time.RFC1123),
	)
	return n.notify(ctx, "booking.created", b, "Your order is awaiting payment", body)
}

func (n *Notifier) BookingConfirmed(ctx context.Context, b *booking.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s is confirmed. We look forward to hosting you from %s.\n",
		b.Fullname, b.UID, b.CheckInDate.Format(dateLayout),
	)
	return n.notify(ctx, "booking.confirmed", b, "Your booking is confirmed", body)
}

func (n *Notifier) BookingRejected(ctx context.Context, b *booking.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour payment for order %s could not be verified. Please upload a new payment proof before %s.\n",
		b.Fullname, b.UID, b.PaymentDeadline.Format(time.RFC1123),
	)
	return n.notify(ctx, "booking.rejected", b, "Payment verification failed", body)
}

func (n *Notifier) BookingCancelled(ctx context.Context, b *booking.Booking) error {
	reason := ""
	if b.CancellationReason != nil {
		reason = *b.CancellationReason
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s has been cancelled. Reason: %s\n",
		b.Fullname, b.UID, reason,
	)
	return n.notify(ctx, "booking.cancelled", b, "Your booking was cancelled", body)
}

func (n *Notifier) CheckInReminder(ctx context.Context, b *booking.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder that your stay (order %s) starts tomorrow, %s. Safe travels!\n",
		b.Fullname, b.UID, b.CheckInDate.Format(dateLayout),
	)
	return n.notify(ctx, "booking.reminder", b, "Your check-in is tomorrow", body)
}
