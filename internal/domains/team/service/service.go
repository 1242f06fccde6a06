package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Team=MockTeamService

import (
	"context"
	"errors"
	"flexwork/config"
	"flexwork/infras/otel"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/team/model"
	"flexwork/internal/domains/team/model/dto"
	"flexwork/internal/domains/team/repository"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	userRepo "flexwork/internal/domains/user/repository"
	"flexwork/shared"
	"flexwork/shared/cache"
	"flexwork/shared/constant"
	"flexwork/shared/failure"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheGetTeam = "team:get"

var (
	ErrNotFound  = failure.NotFound("team not found")
	ErrForbidden = failure.Forbidden("only managers and admins can manage teams")
)

type Team interface {
	Create(ctx context.Context, req dto.CreateTeamRequest) (string, error)
	Get(ctx context.Context, id string) (dto.TeamResponse, error)
	// Invalidate drops the cached copy of a team after an out-of-band write.
	Invalidate(ctx context.Context, id string)
}

type serviceImpl struct {
	repo     repository.Team
	userRepo userRepo.User
	tx       postgres.Transactor
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Team, userRepo userRepo.User, tx postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Team {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		tx:       tx,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create stores the team and moves its manager into it.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTeamRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	identity, ok := userDto.IdentityFromContext(ctx)
	if !ok {
		return constant.Empty, failure.Unauthorized("missing identity") // nolint:wrapcheck
	}

	if !identity.Role.CanManageTeams() {
		return constant.Empty, ErrForbidden
	}

	managerID := identity.UserID
	if req.ManagerID != constant.Empty {
		managerID = req.ManagerID
	}

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(managerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if manager exists")

		return constant.Empty, fmt.Errorf("failed to check if manager exists: %w", err)
	}

	if !exist {
		return constant.Empty, failure.BadRequestFromString("manager does not exist") // nolint:wrapcheck
	}

	team := req.ToModel(managerID)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, team); err != nil {
			return err
		}

		return s.userRepo.UpdateTx(ctx, tx,
			map[string]any{userModel.FieldTeamID: team.ID},
			shared.FilterByID(managerID, userModel.FieldID, userModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create team")

		return constant.Empty, fmt.Errorf("failed to create team: %w", err)
	}

	return team.ID, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TeamResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTeam, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for team")

		return res, nil
	}

	team, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team")

		return res, fmt.Errorf("failed to get team: %w", err)
	}

	if team.ID == constant.Empty {
		return res, ErrNotFound
	}

	res.FromModel(team)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save team to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetTeam, id)); err != nil && !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Str("teamId", id).Msg("failed to delete team from cache")
	}
}
