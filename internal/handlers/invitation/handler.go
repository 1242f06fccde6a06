package invitation

import (
	"flexwork/infras/otel"
	"flexwork/internal/domains/invitation/service"
	"flexwork/internal/handlers/access"
	"flexwork/shared/constant"
	"flexwork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invitation
	otel    otel.Otel
}

func New(service service.Invitation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invitations", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.GetMyInvitations)
		routerGroup.Post("/{id}/accept", handler.AcceptInvitation)
		routerGroup.Post("/{id}/decline", handler.DeclineInvitation)
	})
}

// GetMyInvitations lists the pending invitations addressed to the caller's email.
// @Summary Get my invitations
// @Tags Invitation
// @Produce json
// @Success 200 {object} response.Data[dto.GetInvitationsResponse]
// @Router /v1/invitations/me [get]
// @Security BearerAuth
func (handler *Handler) GetMyInvitations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyInvitations")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ListMine(ctx, identity)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list invitations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AcceptInvitation joins the inviting team.
// @Summary Accept an invitation
// @Tags Invitation
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/invitations/{id}/accept [post]
// @Security BearerAuth
func (handler *Handler) AcceptInvitation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptInvitation")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Accept(ctx, chi.URLParam(request, constant.RequestParamID), identity); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept invitation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Invitation accepted by user " + identity.UserID)

	response.WithMessage(writer, http.StatusOK, "Invitation accepted successfully")
}

// DeclineInvitation rejects the invitation.
// @Summary Decline an invitation
// @Tags Invitation
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/invitations/{id}/decline [post]
// @Security BearerAuth
func (handler *Handler) DeclineInvitation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeclineInvitation")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Decline(ctx, chi.URLParam(request, constant.RequestParamID), identity); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decline invitation")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Invitation declined successfully")
}
