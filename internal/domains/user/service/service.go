package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"errors"
	"flexwork/config"
	"flexwork/infras/otel"
	"flexwork/internal/domains/user/model"
	"flexwork/internal/domains/user/model/dto"
	"flexwork/internal/domains/user/repository"
	"flexwork/shared"
	"flexwork/shared/cache"
	"flexwork/shared/constant"
	"flexwork/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

const cacheGetUser = "user:get"

type User interface {
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	SyncProfile(ctx context.Context, identity dto.Identity) (dto.UserResponse, error)
	UpdateHomeLocation(ctx context.Context, id string, req dto.UpdateHomeLocationRequest) error
	// Invalidate drops the cached profile after a write made elsewhere.
	Invalidate(ctx context.Context, id string)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

// SyncProfile creates the user on first sight and afterwards refreshes the fields
// owned by the identity provider. Team, push token and home location are kept.
func (s *serviceImpl) SyncProfile(ctx context.Context, identity dto.Identity) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(identity.UserID, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		user = identity.ToModel()

		if err = s.repo.Insert(ctx, user); err != nil {
			log.Error().Err(err).Str("userId", identity.UserID).Msg("failed to create user")

			return res, fmt.Errorf("failed to create user: %w", err)
		}
	} else {
		fields := map[string]any{
			model.FieldName:  identity.Name,
			model.FieldEmail: identity.Email,
			model.FieldRole:  identity.Role,
		}

		if err = s.repo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Str("userId", identity.UserID).Msg("failed to update user")

			return res, fmt.Errorf("failed to update user: %w", err)
		}

		user.Name = identity.Name
		user.Email = identity.Email
		user.Role = identity.Role
	}

	s.invalidate(ctx, identity.UserID)
	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateHomeLocation(ctx context.Context, id string, req dto.UpdateHomeLocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHomeLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update home location")

		return fmt.Errorf("failed to update home location: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go s.Invalidate(context.WithoutCancel(ctx), id)
}

func (s *serviceImpl) Invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetUser, id)); err != nil && !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Str("userId", id).Msg("failed to delete user from cache")
	}
}
