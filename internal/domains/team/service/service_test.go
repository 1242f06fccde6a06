package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flexwork/config"
	"flexwork/infras/otel/mocks"
	pgMocks "flexwork/infras/postgres/mocks"
	teamMocks "flexwork/internal/domains/team/mocks"
	"flexwork/internal/domains/team/model"
	"flexwork/internal/domains/team/model/dto"
	"flexwork/internal/domains/team/service"
	userMocks "flexwork/internal/domains/user/mocks"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	cacheMocks "flexwork/shared/cache/mocks"
	"flexwork/shared/failure"
)

type fixture struct {
	svc      service.Team
	repo     *teamMocks.MockTeam
	userRepo *userMocks.MockUser
	tx       *pgMocks.MockTransactor
	cache    *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     teamMocks.NewMockTeam(ctrl),
		userRepo: userMocks.NewMockUser(ctrl),
		tx:       pgMocks.NewMockTransactor(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.userRepo, f.tx, cfg, f.cache, mocks.NewOtel())

	return f
}

func asRole(role userModel.Role) context.Context {
	return userDto.WithIdentity(context.Background(), userDto.Identity{UserID: "m-1", Name: "Maya", Role: role})
}

func TestTeamService_Create(t *testing.T) {
	req := dto.CreateTeamRequest{Name: "Platform"}

	t.Run("manager creates team and joins it", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		var inserted model.Team

		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, team model.Team) error {
				inserted = team

				return nil
			})
		f.userRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, inserted.ID, fields[userModel.FieldTeamID])

				return nil
			})

		id, err := f.svc.Create(asRole(userModel.RoleManager), req)
		require.NoError(t, err)
		assert.Equal(t, inserted.ID, id)
		assert.Equal(t, "m-1", inserted.ManagerID)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(asRole(userModel.RoleUser), req)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("unknown manager", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(asRole(userModel.RoleAdmin), dto.CreateTeamRequest{Name: "Ops", ManagerID: "ghost"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("transaction failure", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.Create(asRole(userModel.RoleManager), req)
		assert.Error(t, err)
	})
}

func TestTeamService_Get(t *testing.T) {
	t.Run("loads and caches", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "team:get:t-1", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Team{ID: "t-1", ManagerID: "m-1"}, nil)

		res, err := f.svc.Get(context.Background(), "t-1")
		require.NoError(t, err)
		assert.Equal(t, "m-1", res.ManagerID)
	})

	t.Run("missing team", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Team{}, nil)

		_, err := f.svc.Get(context.Background(), "t-1")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestTeamService_Invalidate(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Delete(gomock.Any(), "team:get:t-1").Return(nil)

	f.svc.Invalidate(context.Background(), "t-1")
}
