package relay

import (
	"flexwork/infras/otel"
	"flexwork/internal/domains/relay/model/dto"
	"flexwork/internal/domains/relay/service"
	"flexwork/shared/constant"
	"flexwork/shared/failure"
	"flexwork/shared/timezone"
	"flexwork/shared/validator"
	"flexwork/transport/http/response"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const healthStatusOK = "ok"

// Handler serves the relay's plain JSON endpoints. Bodies are written
// without the API envelope because existing callers read them as is.
type Handler struct {
	service  service.Relay
	gatherer prometheus.Gatherer
	otel     otel.Otel
}

func New(service service.Relay, gatherer prometheus.Gatherer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		gatherer: gatherer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
	router.Post("/process-notifications", handler.ProcessNotifications)
	router.Post("/send-test-notification", handler.SendTestNotification)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(handler.gatherer, promhttp.HandlerOpts{}))
}

// Health reports liveness.
// @Summary Relay health
// @Tags Relay
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.Raw(writer, http.StatusOK, dto.HealthResponse{
		Status:    healthStatusOK,
		Timestamp: timezone.Now().UTC().Format(time.RFC3339Nano),
	})
}

// ProcessNotifications drains one batch of unprocessed notifications.
// @Summary Process pending notifications
// @Tags Relay
// @Produce json
// @Success 200 {object} dto.ProcessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /process-notifications [post]
func (handler *Handler) ProcessNotifications(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessNotifications")
	defer scope.End()

	results, err := handler.service.ProcessPending(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process notifications")

		response.Raw(writer, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})

		return
	}

	if results == nil {
		results = []dto.ProcessResult{}
	}

	response.Raw(writer, http.StatusOK, dto.ProcessResponse{
		Success:   true,
		Message:   fmt.Sprintf("Processed %d notifications", len(results)),
		Processed: len(results),
		Results:   results,
	})
}

// SendTestNotification pushes a message straight to one device token.
// @Summary Send a test push
// @Tags Relay
// @Accept json
// @Produce json
// @Param request body dto.SendTestRequest true "Test message"
// @Success 200 {object} dto.SendTestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /send-test-notification [post]
func (handler *Handler) SendTestNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendTestNotification")
	defer scope.End()

	req := dto.SendTestRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.Raw(writer, failure.GetCode(err), dto.ErrorResponse{Error: err.Error()})

		return
	}

	messageID, err := handler.service.SendTest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send test notification")

		response.Raw(writer, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})

		return
	}

	response.Raw(writer, http.StatusOK, dto.SendTestResponse{Success: true, MessageID: messageID})
}
