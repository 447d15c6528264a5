package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is published on every booking lifecycle change so downstream
// consumers (analytics, CRM) can react without polling.
type BookingEvent struct {
	Event        string    `json:"event"`
	OrderUID     string    `json:"order_uid"`
	RoomID       string    `json:"room_id"`
	PropertyID   string    `json:"property_id"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventProducer writes booking events to Kafka.
type EventProducer struct {
	writer *kafka.Writer
}

func NewEventProducer(brokers []string, topic string) *EventProducer {
	return &EventProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish keys messages by order UID so one order's events stay ordered
// within a partition.
func (p *EventProducer) Publish(ctx context.Context, event BookingEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event failed: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderUID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish booking event failed: %w", err)
	}
	return nil
}

func (p *EventProducer) Close() error {
	return p.writer.Close()
}
