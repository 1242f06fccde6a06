package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"flexwork/infras/otel"
	bookingModel "flexwork/internal/domains/booking/model"
	"flexwork/internal/domains/notification/model"
	"flexwork/internal/domains/notification/repository"
	userModel "flexwork/internal/domains/user/model"
	userRepo "flexwork/internal/domains/user/repository"
	"flexwork/shared"
	"flexwork/shared/constant"
	"flexwork/shared/timezone"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Notification enqueues push messages for the relay. A recipient without a push
// token is not an error: nothing is written and nil is returned.
type Notification interface {
	SendBookingStatusNotification(ctx context.Context, booking bookingModel.Booking, newStatus bookingModel.Status, reviewerName string) error
	SendNewBookingRequestNotification(ctx context.Context, booking bookingModel.Booking, managerUserID string) error
}

type serviceImpl struct {
	repo     repository.Notification
	userRepo userRepo.User
	otel     otel.Otel
}

func New(repo repository.Notification, userRepo userRepo.User, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) SendBookingStatusNotification(ctx context.Context, booking bookingModel.Booking, newStatus bookingModel.Status, reviewerName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendBookingStatusNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	token := s.pushToken(ctx, booking.UserID)
	if token == constant.Empty {
		log.Debug().Str("userId", booking.UserID).Msg("no push token, skipping status notification")

		return nil
	}

	content := model.StatusUpdateContent(newStatus.String(), reviewerName, displayDate(booking))

	notification := newNotification(token, content, model.TypeBookingStatusUpdate, model.Data{
		"bookingId": booking.ID,
		"status":    newStatus.String(),
		"date":      booking.Date,
		"type":      string(booking.Type),
	})

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to enqueue status notification")

		return fmt.Errorf("failed to enqueue status notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) SendNewBookingRequestNotification(ctx context.Context, booking bookingModel.Booking, managerUserID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendNewBookingRequestNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	token := s.pushToken(ctx, managerUserID)
	if token == constant.Empty {
		log.Debug().Str("userId", managerUserID).Msg("no push token, skipping request notification")

		return nil
	}

	content := model.NewRequestContent(booking.UserName, displayDate(booking))

	notification := newNotification(token, content, model.TypeNewBookingRequest, model.Data{
		"bookingId": booking.ID,
		"status":    booking.Status.String(),
		"date":      booking.Date,
		"type":      string(booking.Type),
		"userId":    booking.UserID,
		"userName":  booking.UserName,
	})

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to enqueue request notification")

		return fmt.Errorf("failed to enqueue request notification: %w", err)
	}

	return nil
}

// pushToken degrades every lookup failure to "no token".
func (s *serviceImpl) pushToken(ctx context.Context, userID string) string {
	if userID == constant.Empty {
		return constant.Empty
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName), userModel.FieldID, userModel.FieldFCMToken)
	if err != nil {
		log.Warn().Err(err).Str("userId", userID).Msg("failed to look up push token")

		return constant.Empty
	}

	return user.PushToken()
}

func displayDate(booking bookingModel.Booking) string {
	date, err := booking.CalendarDate()
	if err != nil {
		return booking.Date
	}

	return model.DisplayDate(date)
}

func newNotification(token string, content model.Content, kind string, data model.Data) model.Notification {
	return model.Notification{
		ID:        uuid.NewString(),
		FCMToken:  token,
		Title:     content.Title,
		Body:      content.Body,
		Data:      data,
		Type:      kind,
		CreatedAt: timezone.NowMillis(),
	}
}
