package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flexwork/config"
	"flexwork/infras/kafka"
	kafkaMocks "flexwork/infras/kafka/mocks"
	"flexwork/internal/events"
	"flexwork/internal/events/mocks"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "booking.events"
	cfg.Kafka.ConsumerGroup = "flexwork-relay"

	return cfg
}

func TestPublisher_PublishBookingEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	publisher := events.NewPublisher(client, testConfig())
	event := events.NewBookingEvent(events.TypeBookingStatusChanged, "b-1", "APPROVED", "m-1")

	client.EXPECT().
		SendMessages(gomock.Any(), "booking.events", kafka.Message{Key: "b-1", Value: event}).
		Return(nil)

	require.NoError(t, publisher.PublishBookingEvent(context.Background(), event))

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.Error(t, publisher.PublishBookingEvent(context.Background(), event))
}

func TestConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockBookingEventHandler(ctrl)

	consumer := events.NewConsumer(kafkaMocks.NewMockClient(ctrl), testConfig(), handler)

	event := events.NewBookingEvent(events.TypeBookingRequested, "b-1", "PENDING", "m-1")
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	handler.EXPECT().HandleBookingEvent(gomock.Any(), event).Return(nil)

	require.NoError(t, consumer.Handle(context.Background(), kafkaGo.Message{Key: []byte("b-1"), Value: payload}))

	assert.Error(t, consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("{not json")}))
}

func TestConsumer_RunUsesConfiguredTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	consumer := events.NewConsumer(client, testConfig(), mocks.NewMockBookingEventHandler(ctrl))

	client.EXPECT().Consume(gomock.Any(), "flexwork-relay", "booking.events", gomock.Any()).Return(nil)

	assert.NoError(t, consumer.Run(context.Background()))
}

func TestForUser(t *testing.T) {
	filter := events.ForUser("u-1")

	assert.True(t, filter(events.Banner{UserID: "u-1"}))
	assert.False(t, filter(events.Banner{UserID: "u-2"}))
}
