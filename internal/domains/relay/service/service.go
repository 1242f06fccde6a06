package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"flexwork/config"
	"flexwork/infras/fcm"
	"flexwork/infras/otel"
	bookingModel "flexwork/internal/domains/booking/model"
	bookingRepo "flexwork/internal/domains/booking/repository"
	"flexwork/internal/domains/notification/model"
	notificationRepo "flexwork/internal/domains/notification/repository"
	notificationService "flexwork/internal/domains/notification/service"
	"flexwork/internal/domains/relay/model/dto"
	userModel "flexwork/internal/domains/user/model"
	userRepo "flexwork/internal/domains/user/repository"
	"flexwork/internal/events"
	"flexwork/shared"
	"flexwork/shared/constant"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTestTitle    = "Test Notification"
	defaultTestBody     = "This is a test notification from the relay."
	defaultReviewerName = "Your manager"
	defaultSendTimeout  = 10 * time.Second
)

var errMissingToken = errors.New("missing fcm token")

type Relay interface {
	// ProcessNotification claims, sends and finalizes one notification.
	ProcessNotification(ctx context.Context, notification model.Notification) dto.ProcessResult
	// ProcessPending handles the oldest unprocessed notifications one by one.
	ProcessPending(ctx context.Context) ([]dto.ProcessResult, error)
	// Run follows unprocessed notifications until ctx is done.
	Run(ctx context.Context) error
	SendTest(ctx context.Context, req dto.SendTestRequest) (string, error)
	HandleBookingEvent(ctx context.Context, event events.BookingEvent) error
}

type serviceImpl struct {
	repo          notificationRepo.Notification
	notifications notificationService.Notification
	bookings      bookingRepo.Booking
	users         userRepo.User
	messaging     fcm.Messaging
	metrics       *Metrics
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo notificationRepo.Notification,
	notifications notificationService.Notification,
	bookings bookingRepo.Booking,
	users userRepo.User,
	messaging fcm.Messaging,
	metrics *Metrics,
	cfg *config.Config,
	otel otel.Otel,
) Relay {
	return &serviceImpl{
		repo:          repo,
		notifications: notifications,
		bookings:      bookings,
		users:         users,
		messaging:     messaging,
		metrics:       metrics,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) android() androidOptions {
	return androidOptions{channelID: s.cfg.Relay.ChannelID, sound: s.cfg.Relay.Sound}
}

func (s *serviceImpl) sendTimeout() time.Duration {
	if s.cfg.Relay.SendTimeoutSeconds <= 0 {
		return defaultSendTimeout
	}

	return time.Duration(s.cfg.Relay.SendTimeoutSeconds) * time.Second
}

func (s *serviceImpl) ProcessNotification(ctx context.Context, notification model.Notification) (res dto.ProcessResult) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessNotification")
	defer scope.End()

	res.ID = notification.ID
	logger := log.With().Str("notificationId", notification.ID).Logger()

	claimed, err := s.repo.Claim(ctx, notification.ID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to claim notification")
		scope.TraceError(err)
		s.metrics.incProcessed(outcomeError)

		res.Status = dto.ResultStatusError
		res.Error = err.Error()

		return res
	}

	if !claimed {
		logger.Debug().Msg("notification already claimed")
		s.metrics.incProcessed(outcomeSkipped)

		res.Status = dto.ResultStatusSuccess
		res.Result = dto.ResultSkipped

		return res
	}

	messageID, err := s.send(ctx, notification)
	if err != nil {
		logger.Error().Err(err).Msg("failed to send notification")
		scope.TraceError(err)
		s.complete(ctx, notification.ID, model.ProcessStatusError(err))
		s.metrics.incProcessed(outcomeError)

		res.Status = dto.ResultStatusError
		res.Error = err.Error()

		return res
	}

	logger.Info().Str("messageId", messageID).Msg("notification sent")
	s.complete(ctx, notification.ID, model.ProcessStatusSuccess)
	s.metrics.incProcessed(outcomeSuccess)

	res.Status = dto.ResultStatusSuccess
	res.Result = messageID

	return res
}

func (s *serviceImpl) send(ctx context.Context, notification model.Notification) (string, error) {
	if notification.FCMToken == constant.Empty {
		return constant.Empty, errMissingToken
	}

	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()

	start := time.Now()
	messageID, err := s.messaging.Send(ctx, messageFor(notification, s.android()))
	s.metrics.observeSend(time.Since(start).Seconds())

	return messageID, err //nolint:wrapcheck
}

// complete records the terminal status. The notification is already claimed,
// so a failed write leaves it as "processing" and it is not retried.
func (s *serviceImpl) complete(ctx context.Context, id, status string) {
	if err := s.repo.Complete(context.WithoutCancel(ctx), id, status); err != nil {
		log.Error().Err(err).Str("notificationId", id).Str("processStatus", status).Msg("failed to mark notification processed")
	}
}

func (s *serviceImpl) ProcessPending(ctx context.Context) (results []dto.ProcessResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	pending, err := s.repo.GetPending(ctx, s.cfg.Relay.BatchLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load pending notifications")

		return nil, fmt.Errorf("failed to load pending notifications: %w", err)
	}

	results = make([]dto.ProcessResult, 0, len(pending))
	for _, notification := range pending {
		results = append(results, s.ProcessNotification(ctx, notification))
	}

	log.Info().Int("count", len(results)).Msg("processed pending notifications")

	return results, nil
}

func (s *serviceImpl) Run(ctx context.Context) error {
	sub, err := s.repo.WatchPending(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to watch pending notifications: %w", err)
	}
	defer sub.Close()

	log.Info().Msg("relay listening for notifications")

	seen := map[string]struct{}{}

	for snapshot := range sub.C {
		if snapshot.Err != nil {
			log.Error().Err(snapshot.Err).Msg("notification subscription error")

			continue
		}

		current := make(map[string]struct{}, len(snapshot.Items))

		for _, notification := range snapshot.Items {
			current[notification.ID] = struct{}{}

			if _, ok := seen[notification.ID]; ok {
				continue
			}

			s.ProcessNotification(ctx, notification)
		}

		seen = current
	}

	return nil
}

func (s *serviceImpl) SendTest(ctx context.Context, req dto.SendTestRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendTest")
	defer scope.End()
	defer scope.TraceIfError(err)

	title := req.Title
	if title == constant.Empty {
		title = defaultTestTitle
	}

	body := req.Body
	if body == constant.Empty {
		body = defaultTestBody
	}

	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()

	id, err = s.messaging.Send(ctx, newMessage(req.FCMToken, title, body, model.Data(req.Data).Strings(), s.android()))
	if err != nil {
		log.Error().Err(err).Msg("failed to send test notification")

		return constant.Empty, fmt.Errorf("failed to send test notification: %w", err)
	}

	return id, nil
}

// HandleBookingEvent enqueues the notification matching a booking event.
func (s *serviceImpl) HandleBookingEvent(ctx context.Context, event events.BookingEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	logger := log.With().Str("bookingId", event.BookingID).Str("type", event.Type).Logger()

	booking, err := s.bookings.Get(ctx, shared.FilterByID(event.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.ID == constant.Empty {
		logger.Warn().Msg("booking of event not found")

		return nil
	}

	switch event.Type {
	case events.TypeBookingRequested:
		return s.notifications.SendNewBookingRequestNotification(ctx, booking, event.ReviewerID) //nolint:wrapcheck
	case events.TypeBookingStatusChanged:
		status, err := bookingModel.ParseStatus(event.Status)
		if err != nil {
			logger.Warn().Err(err).Msg("skipping event with unknown status")

			return nil
		}

		// The requester cancels their own bookings; there is nobody to tell.
		if status == bookingModel.StatusCancelled {
			return nil
		}

		return s.notifications.SendBookingStatusNotification(ctx, booking, status, s.reviewerName(ctx, event.ReviewerID)) //nolint:wrapcheck
	default:
		logger.Warn().Msg("skipping unknown booking event")

		return nil
	}
}

func (s *serviceImpl) reviewerName(ctx context.Context, reviewerID string) string {
	if reviewerID == constant.Empty {
		return defaultReviewerName
	}

	reviewer, err := s.users.Get(ctx, shared.FilterByID(reviewerID, userModel.FieldID, userModel.TableName), userModel.FieldID, userModel.FieldName)
	if err != nil || reviewer.Name == constant.Empty {
		return defaultReviewerName
	}

	return reviewer.Name
}
