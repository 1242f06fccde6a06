package user_test

import (
	"context"
	"errors"
	"flexwork/infras/otel/mocks"
	pushMocks "flexwork/internal/domains/pushtoken/mocks"
	pushService "flexwork/internal/domains/pushtoken/service"
	userMocks "flexwork/internal/domains/user/mocks"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	"flexwork/internal/handlers/user"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router     http.Handler
	pushTokens *pushMocks.MockPushTokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{pushTokens: pushMocks.NewMockPushTokenService(ctrl)}

	handler := user.New(userMocks.NewMockUserService(ctrl), f.pushTokens, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)
	f.router = router

	return f
}

func (f fixture) serve(ctx context.Context, method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	return recorder
}

func signedIn() context.Context {
	return userDto.WithIdentity(context.Background(), userDto.Identity{UserID: "u-1", Name: "Ana", Role: userModel.RoleUser})
}

func TestHandler_UpdatePushToken(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		body     string
		mock     func(f fixture)
		wantCode int
	}{
		{
			name: "reported token goes through the initialize path",
			ctx:  signedIn(),
			body: `{"token":"device-token"}`,
			mock: func(f fixture) {
				f.pushTokens.EXPECT().Initialize(gomock.Any(), gomock.Any()).
					Do(func(ctx context.Context, source pushService.TokenSource) {
						identity, ok := userDto.IdentityFromContext(ctx)
						assert.True(t, ok)
						assert.Equal(t, "u-1", identity.UserID)

						token, err := source.Token(ctx)
						assert.NoError(t, err)
						assert.Equal(t, "device-token", token)
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "empty token is rejected",
			ctx:      signedIn(),
			body:     `{"token":""}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "anonymous caller is rejected",
			ctx:      context.Background(),
			body:     `{"token":"device-token"}`,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.mock != nil {
				tt.mock(f)
			}

			recorder := f.serve(tt.ctx, http.MethodPut, "/users/me/push-token", tt.body)
			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_ClearPushToken(t *testing.T) {
	t.Run("token is cleared for the caller", func(t *testing.T) {
		f := newFixture(t)

		f.pushTokens.EXPECT().ClearToken(gomock.Any(), "u-1", gomock.Any()).Return(nil)

		recorder := f.serve(signedIn(), http.MethodDelete, "/users/me/push-token", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("store error is a server error", func(t *testing.T) {
		f := newFixture(t)

		f.pushTokens.EXPECT().ClearToken(gomock.Any(), "u-1", gomock.Any()).Return(errors.New("db down"))

		recorder := f.serve(signedIn(), http.MethodDelete, "/users/me/push-token", "")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
