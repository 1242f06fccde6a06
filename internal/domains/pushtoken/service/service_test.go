package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"flexwork/infras/otel/mocks"
	pushMocks "flexwork/internal/domains/pushtoken/mocks"
	"flexwork/internal/domains/pushtoken/service"
	userMocks "flexwork/internal/domains/user/mocks"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
)

func newService(t *testing.T) (service.PushToken, *userMocks.MockUser, *pushMocks.MockTokenSource) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := userMocks.NewMockUser(ctrl)
	users := userMocks.NewMockUserService(ctrl)
	users.EXPECT().Invalidate(gomock.Any(), gomock.Any()).AnyTimes()

	return service.New(repo, users, mocks.NewOtel()), repo, pushMocks.NewMockTokenSource(ctrl)
}

func tokenField(token string) map[string]any {
	return map[string]any{userModel.FieldFCMToken: &token}
}

func authenticated(userID string) context.Context {
	return userDto.WithIdentity(context.Background(), userDto.Identity{UserID: userID, Role: userModel.RoleUser})
}

func TestPushToken_Initialize(t *testing.T) {
	t.Run("stores token for the signed in user", func(t *testing.T) {
		svc, repo, source := newService(t)

		source.EXPECT().Token(gomock.Any()).Return("token-1", nil)
		repo.EXPECT().Update(gomock.Any(), tokenField("token-1"), gomock.Any()).Return(nil)

		svc.Initialize(authenticated("u-1"), source)
	})

	t.Run("anonymous context writes nothing", func(t *testing.T) {
		svc, _, source := newService(t)

		svc.Initialize(context.Background(), source)
	})

	t.Run("provider failure is swallowed", func(t *testing.T) {
		svc, _, source := newService(t)

		source.EXPECT().Token(gomock.Any()).Return("", errors.New("no play services"))

		svc.Initialize(authenticated("u-1"), source)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		svc, repo, source := newService(t)

		source.EXPECT().Token(gomock.Any()).Return("token-1", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		svc.Initialize(authenticated("u-1"), source)
	})
}

func TestPushToken_Watch(t *testing.T) {
	svc, repo, source := newService(t)

	rotations := make(chan string, 2)
	rotations <- "token-2"
	rotations <- "token-3"
	close(rotations)

	source.EXPECT().Rotations().Return(rotations)
	gomock.InOrder(
		repo.EXPECT().Update(gomock.Any(), tokenField("token-2"), gomock.Any()).Return(nil),
		repo.EXPECT().Update(gomock.Any(), tokenField("token-3"), gomock.Any()).Return(nil),
	)

	done := make(chan struct{})

	go func() {
		defer close(done)
		svc.Watch(authenticated("u-1"), source)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after the rotation channel closed")
	}
}

func TestPushToken_WatchStopsOnCancel(t *testing.T) {
	svc, _, source := newService(t)

	source.EXPECT().Rotations().Return(make(chan string))

	ctx, cancel := context.WithCancel(authenticated("u-1"))
	done := make(chan struct{})

	go func() {
		defer close(done)
		svc.Watch(ctx, source)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestPushToken_UpdateToken(t *testing.T) {
	svc, repo, _ := newService(t)

	assert.ErrorIs(t, svc.UpdateToken(context.Background(), "u-1", ""), service.ErrEmptyToken)

	repo.EXPECT().Update(gomock.Any(), tokenField("token-9"), gomock.Any()).Return(nil)
	assert.NoError(t, svc.UpdateToken(context.Background(), "u-1", "token-9"))
}

func TestPushToken_ClearToken(t *testing.T) {
	t.Run("nulls the token then revokes it", func(t *testing.T) {
		svc, repo, source := newService(t)

		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), map[string]any{userModel.FieldFCMToken: (*string)(nil)}, gomock.Any()).Return(nil),
			source.EXPECT().DeleteToken(gomock.Any()).Return(nil),
		)

		assert.NoError(t, svc.ClearToken(context.Background(), "u-1", source))
	})

	t.Run("store failure skips revocation", func(t *testing.T) {
		svc, repo, source := newService(t)

		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, svc.ClearToken(context.Background(), "u-1", source))
	})

	t.Run("static source revokes nothing", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.ClearToken(context.Background(), "u-1", service.NewStaticSource("token-1")))
	})
}
