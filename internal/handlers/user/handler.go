package user

import (
	"flexwork/infras/otel"
	pushDto "flexwork/internal/domains/pushtoken/model/dto"
	pushService "flexwork/internal/domains/pushtoken/service"
	"flexwork/internal/domains/user/model/dto"
	"flexwork/internal/domains/user/service"
	"flexwork/internal/handlers/access"
	"flexwork/shared/constant"
	"flexwork/shared/validator"
	"flexwork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.User
	pushTokens pushService.PushToken
	otel       otel.Otel
}

func New(service service.User, pushTokens pushService.PushToken, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		pushTokens: pushTokens,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users/me", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMe)
		routerGroup.Put("/", handler.SyncProfile)
		routerGroup.Put("/home-location", handler.UpdateHomeLocation)
		routerGroup.Put("/push-token", handler.UpdatePushToken)
		routerGroup.Delete("/push-token", handler.ClearPushToken)
	})
}

func (handler *Handler) fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(writer, err)
}

// GetMe returns the caller's profile.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 404 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	user, err := handler.service.Get(ctx, identity.UserID)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get user")

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// SyncProfile creates or refreshes the caller's profile from the access token.
// @Summary Sync my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Router /v1/users/me [put]
// @Security BearerAuth
func (handler *Handler) SyncProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncProfile")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	user, err := handler.service.SyncProfile(ctx, identity)
	if err != nil {
		handler.fail(writer, scope, err, "failed to sync profile")

		return
	}

	scope.AddEvent("Profile synced for user " + identity.UserID)

	response.WithJSON(writer, http.StatusOK, user)
}

// UpdateHomeLocation stores the caller's home coordinates.
// @Summary Update my home location
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateHomeLocationRequest true "Home location"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/users/me/home-location [put]
// @Security BearerAuth
func (handler *Handler) UpdateHomeLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHomeLocation")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	req := dto.UpdateHomeLocationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.UpdateHomeLocation(ctx, identity.UserID, req); err != nil {
		handler.fail(writer, scope, err, "failed to update home location")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Home location updated successfully")
}

// UpdatePushToken stores the push token the caller's device reported. Storage
// failures are logged and do not fail the request.
// @Summary Register my push token
// @Tags User
// @Accept json
// @Produce json
// @Param request body pushDto.UpdateTokenRequest true "Push token"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/users/me/push-token [put]
// @Security BearerAuth
func (handler *Handler) UpdatePushToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePushToken")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	req := pushDto.UpdateTokenRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	handler.pushTokens.Initialize(ctx, pushService.NewStaticSource(req.Token))

	scope.AddEvent("Push token reported by user " + identity.UserID)

	response.WithMessage(writer, http.StatusOK, "Push token updated successfully")
}

// ClearPushToken stops push delivery to the caller, for example on sign out.
// @Summary Clear my push token
// @Tags User
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/users/me/push-token [delete]
// @Security BearerAuth
func (handler *Handler) ClearPushToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearPushToken")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	if err := handler.pushTokens.ClearToken(ctx, identity.UserID, pushService.NewStaticSource(constant.Empty)); err != nil {
		handler.fail(writer, scope, err, "failed to clear push token")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Push token cleared successfully")
}
