package middleware_test

import (
	"flexwork/config"
	"flexwork/infras/jwt"
	"flexwork/infras/otel/mocks"
	userDto "flexwork/internal/domains/user/model/dto"
	"flexwork/permissions"
	"flexwork/shared/constant"
	"flexwork/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "test-secret"
	apiKey = "internal-key"
)

const rules = `{
  "endpoints": [
    {"path": "/v1/bookings/month/{month}", "method": "GET", "permissions": ["manager", "admin"]},
    {"path": "/v1/health", "method": "GET", "skip": true}
  ]
}`

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.App.APIKey = apiKey

	data, err := permissions.Parse([]byte(rules))
	require.NoError(t, err)

	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), data, cfg)

	echo := func(writer http.ResponseWriter, request *http.Request) {
		identity, _ := userDto.IdentityFromContext(request.Context())
		writer.Header().Set("X-User", identity.UserID)
		writer.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(auth.APIKey, auth.Auth, auth.RBAC)
		r.Get("/health", echo)
		r.Get("/bookings/me", echo)
		r.Get("/bookings/month/{month}", echo)
	})

	return router
}

func token(t *testing.T, email, role string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		UserID: "u-1",
		Email:  email,
		Role:   role,
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(expiresIn)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestAuthRole(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		path     string
		header   map[string]string
		wantCode int
		wantUser string
	}{
		{
			name:     "missing header",
			path:     "/v1/bookings/me",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			path:     "/v1/bookings/me",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			path:     "/v1/bookings/me",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, "ana@example.com", "user", -time.Minute)},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "token without email",
			path:     "/v1/bookings/me",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, "", "user", time.Hour)},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token reaches handler with identity",
			path:     "/v1/bookings/me",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, "ana@example.com", "user", time.Hour)},
			wantCode: http.StatusOK,
			wantUser: "u-1",
		},
		{
			name:     "user role is refused on manager route",
			path:     "/v1/bookings/month/2024-05",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, "ana@example.com", "user", time.Hour)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "manager role passes manager route",
			path:     "/v1/bookings/month/2024-05",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, "ana@example.com", "manager", time.Hour)},
			wantCode: http.StatusOK,
			wantUser: "u-1",
		},
		{
			name:     "unknown role falls back to user",
			path:     "/v1/bookings/month/2024-05",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, "ana@example.com", "owner", time.Hour)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "skipped route needs no token",
			path:     "/v1/health",
			wantCode: http.StatusOK,
		},
		{
			name:     "valid api key bypasses auth",
			path:     "/v1/bookings/month/2024-05",
			header:   map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key is refused",
			path:     "/v1/bookings/me",
			header:   map[string]string{constant.RequestHeaderAPIKey: "nope"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, value := range tt.header {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantUser, recorder.Header().Get("X-User"))
		})
	}
}

func TestAuthRole_NoPermissionsLoaded(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret

	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), nil, cfg)

	router := chi.NewRouter()
	router.With(auth.Auth, auth.RBAC).Get("/v1/bookings/me", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/me", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, token(t, "ana@example.com", "admin", time.Hour))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
