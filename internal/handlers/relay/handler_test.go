package relay_test

import (
	"encoding/json"
	"errors"
	"flexwork/infras/otel/mocks"
	relayMocks "flexwork/internal/domains/relay/mocks"
	"flexwork/internal/domains/relay/model/dto"
	"flexwork/internal/handlers/relay"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *relayMocks.MockRelay) {
	t.Helper()

	svc := relayMocks.NewMockRelay(gomock.NewController(t))

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "relay_test_total", Help: "test"}))

	handler := relay.New(svc, registry, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_Health(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestHandler_ProcessNotifications(t *testing.T) {
	t.Run("reports every result", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ProcessPending(gomock.Any()).Return([]dto.ProcessResult{
			{ID: "n-1", Status: dto.ResultStatusSuccess, Result: "msg-1"},
			{ID: "n-2", Status: dto.ResultStatusError, Error: "no token"},
		}, nil)

		recorder := serve(router, http.MethodPost, "/process-notifications", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body dto.ProcessResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, 2, body.Processed)
		assert.Equal(t, "Processed 2 notifications", body.Message)
		assert.Len(t, body.Results, 2)
	})

	t.Run("empty batch encodes an empty list", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ProcessPending(gomock.Any()).Return(nil, nil)

		recorder := serve(router, http.MethodPost, "/process-notifications", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"results":[]`)
	})

	t.Run("query failure is a 500", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ProcessPending(gomock.Any()).Return(nil, errors.New("db down"))

		recorder := serve(router, http.MethodPost, "/process-notifications", "")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "db down", body.Error)
	})
}

func TestHandler_SendTestNotification(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *relayMocks.MockRelay)
		wantCode int
		wantBody string
	}{
		{
			name:     "missing token",
			body:     `{"title":"hi"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			body:     `{`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "provider failure",
			body: `{"fcmToken":"t-1"}`,
			mock: func(svc *relayMocks.MockRelay) {
				svc.EXPECT().SendTest(gomock.Any(), gomock.Any()).Return("", errors.New("unregistered"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `"error":"unregistered"`,
		},
		{
			name: "sent",
			body: `{"fcmToken":"t-1","title":"Hello","body":"World"}`,
			mock: func(svc *relayMocks.MockRelay) {
				svc.EXPECT().SendTest(gomock.Any(), dto.SendTestRequest{FCMToken: "t-1", Title: "Hello", Body: "World"}).Return("msg-9", nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"messageId":"msg-9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.mock != nil {
				tt.mock(svc)
			}

			recorder := serve(router, http.MethodPost, "/send-test-notification", tt.body)
			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_Metrics(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "relay_test_total")
}
