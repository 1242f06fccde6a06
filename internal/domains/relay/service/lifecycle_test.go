package service_test

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/prometheus/client_golang/prometheus"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flexwork/config"
	fcmMocks "flexwork/infras/fcm/mocks"
	"flexwork/infras/kafka"
	"flexwork/infras/otel/mocks"
	bookingModel "flexwork/internal/domains/booking/model"
	bookingDto "flexwork/internal/domains/booking/model/dto"
	bookingService "flexwork/internal/domains/booking/service"
	"flexwork/internal/domains/notification/model"
	notificationService "flexwork/internal/domains/notification/service"
	"flexwork/internal/domains/relay/model/dto"
	"flexwork/internal/domains/relay/service"
	teamMocks "flexwork/internal/domains/team/mocks"
	teamDto "flexwork/internal/domains/team/model/dto"
	userMocks "flexwork/internal/domains/user/mocks"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	"flexwork/internal/events"
	"flexwork/shared/changefeed"
	gDto "flexwork/shared/dto"
	"flexwork/shared/eventbus"
	"flexwork/shared/livequery"
	"flexwork/shared/timezone"
)

// eqValues collects the equality filters of group, nested groups included.
func eqValues(group gDto.FilterGroup, out map[string]string) map[string]string {
	for _, item := range group.Filters {
		switch filter := item.(type) {
		case gDto.Filter:
			if filter.Operator == gDto.FilterOperatorEq {
				out[filter.Field] = fmt.Sprint(filter.Value)
			}
		case gDto.FilterGroup:
			eqValues(filter, out)
		}
	}

	return out
}

type memoryBookings struct {
	mu   sync.Mutex
	rows map[string]bookingModel.Booking
}

func (m *memoryBookings) field(booking bookingModel.Booking, name string) string {
	switch name {
	case bookingModel.FieldID:
		return booking.ID
	case bookingModel.FieldUserID:
		return booking.UserID
	case bookingModel.FieldDate:
		return booking.Date
	default:
		return ""
	}
}

func (m *memoryBookings) match(filter gDto.FilterGroup) []bookingModel.Booking {
	want := eqValues(filter, map[string]string{})
	out := []bookingModel.Booking{}

	for _, booking := range m.rows {
		ok := true

		for name, value := range want {
			if m.field(booking, name) != value {
				ok = false
			}
		}

		if ok {
			out = append(out, booking)
		}
	}

	return out
}

func (m *memoryBookings) Insert(_ context.Context, booking bookingModel.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows[booking.ID] = booking

	return nil
}

func (m *memoryBookings) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (bookingModel.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if found := m.match(filter); len(found) > 0 {
		return found[0], nil
	}

	return bookingModel.Booking{}, nil
}

func (m *memoryBookings) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.match(filter), nil
}

func (m *memoryBookings) Count(_ context.Context, filter gDto.FilterGroup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.match(filter)), nil
}

func (m *memoryBookings) UpdateStatus(_ context.Context, id string, status bookingModel.Status, reviewerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.rows[id]
	if !ok {
		return bookingService.ErrNotFound
	}

	booking.Status = status
	booking.ReviewerID = reviewerID
	m.rows[id] = booking

	return nil
}

func (m *memoryBookings) UpdateStatusBatch(ctx context.Context, ids []string, status bookingModel.Status, reviewerID string) error {
	for _, id := range ids {
		if err := m.UpdateStatus(ctx, id, status, reviewerID); err != nil {
			return err
		}
	}

	return nil
}

func (m *memoryBookings) Watch(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup) (*livequery.Subscription[bookingModel.Booking], error) {
	return nil, errors.New("watch is not supported")
}

type memoryNotifications struct {
	mu   sync.Mutex
	rows map[string]model.Notification
	feed *changefeed.Local
}

func (m *memoryNotifications) Insert(ctx context.Context, notification model.Notification) error {
	m.mu.Lock()
	m.rows[notification.ID] = notification
	m.mu.Unlock()

	return m.feed.Publish(ctx, changefeed.TopicNotifications)
}

func (m *memoryNotifications) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.rows[eqValues(filter, map[string]string{})[model.FieldID]], nil
}

func (m *memoryNotifications) GetPending(_ context.Context, limit int) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := []model.Notification{}

	for _, notification := range m.rows {
		if !notification.Processed {
			pending = append(pending, notification)
		}
	}

	slices.SortFunc(pending, func(a, b model.Notification) int { return cmp.Compare(a.CreatedAt, b.CreatedAt) })

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	return pending, nil
}

func (m *memoryNotifications) Claim(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notification, ok := m.rows[id]
	if !ok || notification.Processed {
		return false, nil
	}

	notification.Processed = true
	notification.ProcessStatus = model.ProcessStatusProcessing
	m.rows[id] = notification

	return true, nil
}

func (m *memoryNotifications) Complete(_ context.Context, id, processStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	notification := m.rows[id]
	now := timezone.Now()
	notification.Processed = true
	notification.ProcessStatus = processStatus
	notification.ProcessedAt = &now
	m.rows[id] = notification

	return nil
}

func (m *memoryNotifications) WatchPending(ctx context.Context, limit int) (*livequery.Subscription[model.Notification], error) {
	return livequery.Watch(ctx, m.feed, changefeed.TopicNotifications, func(ctx context.Context) ([]model.Notification, error) {
		return m.GetPending(ctx, limit)
	})
}

func (m *memoryNotifications) byType(kind string) []model.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Notification{}

	for _, notification := range m.rows {
		if notification.Type == kind {
			out = append(out, notification)
		}
	}

	return out
}

// kafkaLoopback hands every published event to the consumer as an encoded message.
type kafkaLoopback struct {
	consumer *events.Consumer
}

func (k *kafkaLoopback) PublishBookingEvent(ctx context.Context, event events.BookingEvent) error {
	message := kafka.Message{Key: event.BookingID, Value: event}

	encoded, err := message.ToKafkaMessage()
	if err != nil {
		return err
	}

	return k.consumer.Handle(ctx, kafkaGo.Message{Key: encoded.Key, Value: encoded.Value})
}

func TestBookingLifecycle_ApprovalReachesDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.Relay.SendTimeoutSeconds = 5

	requesterToken := "token-u-1"
	managerToken := "token-m-1"
	people := map[string]userModel.User{
		"u-1": {ID: "u-1", Name: "Ana", TeamID: "t-1", FCMToken: &requesterToken},
		"m-1": {ID: "m-1", Name: "Max", TeamID: "t-1", Role: userModel.RoleManager, FCMToken: &managerToken},
	}

	users := userMocks.NewMockUser(ctrl)
	users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (userModel.User, error) {
			return people[eqValues(filter, map[string]string{})[userModel.FieldID]], nil
		})

	teams := teamMocks.NewMockTeamService(ctrl)
	teams.EXPECT().Get(gomock.Any(), "t-1").Return(teamDto.TeamResponse{ID: "t-1", ManagerID: "m-1"}, nil)

	sent := []*messaging.Message{}
	push := fcmMocks.NewMockMessaging(ctrl)
	push.EXPECT().Send(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, message *messaging.Message) (string, error) {
			sent = append(sent, message)

			return fmt.Sprintf("msg-%d", len(sent)), nil
		})

	feed := changefeed.NewLocal()
	signals, err := feed.Listen(ctx, changefeed.TopicNotifications)
	require.NoError(t, err)
	t.Cleanup(func() { _ = signals.Close() })

	bookings := &memoryBookings{rows: map[string]bookingModel.Booking{}}
	queue := &memoryNotifications{rows: map[string]model.Notification{}, feed: feed}

	notifications := notificationService.New(queue, users, mocks.NewOtel())
	relay := service.New(queue, notifications, bookings, users, push, service.NewMetrics(prometheus.NewRegistry()), cfg, mocks.NewOtel())
	loopback := &kafkaLoopback{consumer: events.NewConsumer(nil, cfg, relay)}

	banners := eventbus.New[events.Banner](4)
	t.Cleanup(banners.Close)

	svc := bookingService.New(bookings, teams, loopback, banners, mocks.NewOtel())

	date := bookingModel.FormatDate(timezone.Today().AddDate(0, 0, 1))

	id, err := svc.CreateBooking(ctx, bookingDto.CreateBookingInput{Date: date, UserID: "u-1", UserName: "Ana", TeamID: "t-1"})
	require.NoError(t, err)

	requests := queue.byType(model.TypeNewBookingRequest)
	require.Len(t, requests, 1)
	assert.Equal(t, managerToken, requests[0].FCMToken)

	manager := userDto.Identity{UserID: "m-1", Name: "Max", Role: userModel.RoleManager}
	require.NoError(t, svc.ReviewBooking(ctx, id, bookingModel.StatusApproved, manager))

	updates := queue.byType(model.TypeBookingStatusUpdate)
	require.Len(t, updates, 1)

	update := updates[0]
	assert.Equal(t, requesterToken, update.FCMToken)
	assert.Equal(t, "Booking approved", update.Title)
	assert.Contains(t, update.Body, "Max approved")
	assert.Equal(t, "APPROVED", update.Data["status"])
	assert.Equal(t, id, update.Data["bookingId"])
	assert.False(t, update.Processed)

	select {
	case <-signals.C():
	default:
		t.Fatal("expected a change signal for the enqueued notification")
	}

	res := relay.ProcessNotification(ctx, update)
	assert.Equal(t, dto.ResultStatusSuccess, res.Status)
	assert.NotEqual(t, dto.ResultSkipped, res.Result)

	stored, err := queue.Get(ctx, gDto.FilterGroup{Filters: []any{gDto.Filter{Field: model.FieldID, Value: update.ID, Operator: gDto.FilterOperatorEq}}})
	require.NoError(t, err)
	assert.True(t, stored.Processed)
	assert.Equal(t, model.ProcessStatusSuccess, stored.ProcessStatus)
	assert.NotNil(t, stored.ProcessedAt)

	require.Len(t, sent, 1)
	assert.Equal(t, requesterToken, sent[0].Token)
	assert.Equal(t, "Booking approved", sent[0].Notification.Title)

	pending, err := queue.GetPending(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, model.TypeNewBookingRequest, pending[0].Type)

	again := relay.ProcessNotification(ctx, update)
	assert.Equal(t, dto.ResultSkipped, again.Result)
	assert.Len(t, sent, 1)
}
