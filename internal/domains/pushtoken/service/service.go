package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=PushToken=MockPushTokenService

import (
	"context"
	"flexwork/infras/otel"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	userRepo "flexwork/internal/domains/user/repository"
	userService "flexwork/internal/domains/user/service"
	"flexwork/shared"
	"flexwork/shared/constant"
	"flexwork/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrEmptyToken = failure.BadRequestFromString("push token is required")

// PushToken keeps users.fcm_token in step with the device token.
type PushToken interface {
	// Initialize stores the current token for the user on ctx. Failures are logged only.
	Initialize(ctx context.Context, source TokenSource)
	// Watch persists every rotated token until ctx is done or source stops.
	Watch(ctx context.Context, source TokenSource)
	UpdateToken(ctx context.Context, userID, token string) error
	ClearToken(ctx context.Context, userID string, source TokenSource) error
}

type serviceImpl struct {
	repo  userRepo.User
	users userService.User
	otel  otel.Otel
}

func New(repo userRepo.User, users userService.User, otel otel.Otel) PushToken {
	return &serviceImpl{
		repo:  repo,
		users: users,
		otel:  otel,
	}
}

func (s *serviceImpl) Initialize(ctx context.Context, source TokenSource) {
	identity, ok := userDto.IdentityFromContext(ctx)
	if !ok {
		log.Debug().Msg("no authenticated user, push token not stored")

		return
	}

	token, err := source.Token(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to fetch push token")

		return
	}

	if err = s.UpdateToken(ctx, identity.UserID, token); err != nil {
		log.Warn().Err(err).Str("userId", identity.UserID).Msg("failed to store push token")
	}
}

func (s *serviceImpl) Watch(ctx context.Context, source TokenSource) {
	rotations := source.Rotations()

	for {
		select {
		case <-ctx.Done():
			return
		case token, ok := <-rotations:
			if !ok {
				return
			}

			s.Initialize(ctx, NewStaticSource(token))
		}
	}
}

// UpdateToken writes only fcm_token; every other profile field is left as is.
func (s *serviceImpl) UpdateToken(ctx context.Context, userID, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == constant.Empty {
		return ErrEmptyToken
	}

	return s.write(ctx, userID, &token)
}

func (s *serviceImpl) ClearToken(ctx context.Context, userID string, source TokenSource) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.write(ctx, userID, nil); err != nil {
		return err
	}

	if err = source.DeleteToken(ctx); err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to invalidate push token")

		return fmt.Errorf("failed to invalidate push token: %w", err)
	}

	return nil
}

func (s *serviceImpl) write(ctx context.Context, userID string, token *string) error {
	fields := map[string]any{userModel.FieldFCMToken: token}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(userID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to write push token")

		return fmt.Errorf("failed to write push token: %w", err)
	}

	s.users.Invalidate(ctx, userID)

	return nil
}
