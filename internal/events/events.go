// Package events defines the booking events exchanged between the API and the
// notification relay, and the in-app banners shown to connected users.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"flexwork/config"
	"flexwork/infras/kafka"
	"flexwork/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	TypeBookingRequested     = "booking.requested"
	TypeBookingStatusChanged = "booking.status_changed"
)

type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"bookingId"`
	Status     string `json:"status"`
	ReviewerID string `json:"reviewerId"`
	OccurredAt int64  `json:"occurredAt"`
}

func NewBookingEvent(eventType, bookingID, status, reviewerID string) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  bookingID,
		Status:     status,
		ReviewerID: reviewerID,
		OccurredAt: timezone.NowMillis(),
	}
}

// Banner is an in-app message for one connected user.
type Banner struct {
	UserID    string `json:"-"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// ForUser selects the banners addressed to userID.
func ForUser(userID string) func(Banner) bool {
	return func(b Banner) bool {
		return b.UserID == userID
	}
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.BookingTopic,
	}
}

// PublishBookingEvent keys the message by booking id so events of one booking stay ordered.
func (p *kafkaPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		return fmt.Errorf("failed to publish %s for booking %s: %w", event.Type, event.BookingID, err)
	}

	return nil
}

type BookingEventHandler interface {
	HandleBookingEvent(ctx context.Context, event BookingEvent) error
}

type Consumer struct {
	client  kafka.Client
	cfg     *config.Config
	handler BookingEventHandler
}

func NewConsumer(client kafka.Client, cfg *config.Config, handler BookingEventHandler) *Consumer {
	return &Consumer{
		client:  client,
		cfg:     cfg,
		handler: handler,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.cfg.Kafka.BookingTopic).Msg("consuming booking events")

	return c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.BookingTopic, c.Handle) //nolint:wrapcheck
}

func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) error {
	event, err := kafka.DecodeValue[BookingEvent](message)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.handler.HandleBookingEvent(ctx, event) //nolint:wrapcheck
}
