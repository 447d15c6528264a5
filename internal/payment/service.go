package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/staylodge/staylodge-backend/internal/booking"
	"github.com/staylodge/staylodge-backend/internal/logger"
)

// Notification is the gateway's webhook payload.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
}

var ErrInvalidSignature = errors.New("webhook signature mismatch")

type statusApplier interface {
	ApplyGatewayStatus(ctx context.Context, orderUID, transactionStatus string) (bool, error)
}

// Service reconciles inbound gateway webhooks with the booking state machine.
type Service struct {
	bookings  statusApplier
	serverKey string
	log       *logger.Logger
}

func NewService(bookings statusApplier, serverKey string, log *logger.Logger) *Service {
	return &Service{
		bookings:  bookings,
		serverKey: serverKey,
		log:       log,
	}
}

// HandleNotification verifies the webhook and applies the matching
// transition. Errors are for the caller's log only; the HTTP handler always
// acknowledges 200 to keep the gateway from retry-storming.
func (s *Service) HandleNotification(ctx context.Context, n Notification) error {
	if !VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, s.serverKey, n.SignatureKey) {
		s.log.LogSecurity("webhook-signature", fmt.Sprintf("signature mismatch for order %s", n.OrderID))
		return ErrInvalidSignature
	}

	applied, err := s.bookings.ApplyGatewayStatus(ctx, n.OrderID, n.TransactionStatus)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) || errors.Is(err, booking.ErrInvalidOrderID) {
			// Unknown orders are logged and acknowledged; the gateway must
			// not keep retrying them.
			s.log.LogPayment("webhook", n.OrderID, "order not found, acknowledged")
			return nil
		}
		return err
	}

	if applied {
		s.log.LogPayment("webhook", n.OrderID, "applied "+n.TransactionStatus)
	}
	return nil
}
