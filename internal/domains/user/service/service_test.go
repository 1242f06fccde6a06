package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flexwork/config"
	"flexwork/infras/otel/mocks"
	userMocks "flexwork/internal/domains/user/mocks"
	"flexwork/internal/domains/user/model"
	"flexwork/internal/domains/user/model/dto"
	"flexwork/internal/domains/user/service"
	cacheMocks "flexwork/shared/cache/mocks"
	"flexwork/shared/failure"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantCode  int
		wantName  string
	}{
		{
			name: "cache hit",
			setupMock: func(_ *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "user:get:u-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.UserResponse).Name = "Cached"

						return nil
					})
			},
			wantName: "Cached",
		},
		{
			name: "loaded from store",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Name: "Ana"}, nil)
			},
			wantName: "Ana",
		},
		{
			name: "not found",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store error",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "u-1")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
		})
	}
}

func TestUserService_SyncProfile(t *testing.T) {
	identity := dto.Identity{UserID: "u-1", Name: "Ana", Email: "ana@example.com", Role: model.RoleManager}

	t.Run("creates unknown user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
		repo.EXPECT().Insert(gomock.Any(), identity.ToModel()).Return(nil)

		res, err := svc.SyncProfile(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, "manager", res.Role)
		assert.Empty(t, res.TeamID)
	})

	t.Run("refreshes provider fields and keeps team", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Name: "Old", TeamID: "t-1", Role: model.RoleUser}, nil)
		repo.EXPECT().Update(gomock.Any(), map[string]any{
			model.FieldName:  "Ana",
			model.FieldEmail: "ana@example.com",
			model.FieldRole:  model.RoleManager,
		}, gomock.Any()).Return(nil)

		res, err := svc.SyncProfile(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, "Ana", res.Name)
		assert.Equal(t, "t-1", res.TeamID)
	})

	t.Run("insert error", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.SyncProfile(context.Background(), identity)
		assert.Error(t, err)
	})
}

func TestUserService_UpdateHomeLocation(t *testing.T) {
	req := dto.UpdateHomeLocationRequest{Latitude: 52.5, Longitude: 13.4}

	t.Run("updates location fields only", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), req.ToFields(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.UpdateHomeLocation(context.Background(), "u-1", req))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateHomeLocation(context.Background(), "u-1", req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
