package team

import (
	"context"
	"flexwork/infras/otel"
	bookingDto "flexwork/internal/domains/booking/model/dto"
	bookingService "flexwork/internal/domains/booking/service"
	invitationDto "flexwork/internal/domains/invitation/model/dto"
	invitationService "flexwork/internal/domains/invitation/service"
	"flexwork/internal/domains/team/model/dto"
	"flexwork/internal/domains/team/service"
	userService "flexwork/internal/domains/user/service"
	"flexwork/internal/handlers/access"
	"flexwork/shared/constant"
	"flexwork/shared/validator"
	"flexwork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Team
	bookings    bookingService.Booking
	invitations invitationService.Invitation
	users       userService.User
	otel        otel.Otel
}

func New(
	service service.Team,
	bookings bookingService.Booking,
	invitations invitationService.Invitation,
	users userService.User,
	otel otel.Otel,
) Handler {
	return Handler{
		service:     service,
		bookings:    bookings,
		invitations: invitations,
		users:       users,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/teams", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTeam)
		routerGroup.Get("/{id}", handler.GetTeam)
		routerGroup.Get("/{id}/bookings", handler.GetTeamBookings)
		routerGroup.Post("/{id}/invitations", handler.InviteMember)
	})
}

func (handler *Handler) fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(writer, err)
}

// CreateTeam creates a team managed by the caller or by managerId.
// @Summary Create a team
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "Create Team Request"
// @Success 201 {object} response.Data[dto.CreateTeamResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/teams [post]
// @Security BearerAuth
func (handler *Handler) CreateTeam(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTeam")
	defer scope.End()

	req := dto.CreateTeamRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create team")

		return
	}

	scope.AddEvent("Team created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateTeamResponse{ID: id})
}

// GetTeam returns a team the caller belongs to.
// @Summary Get a team
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.Data[dto.TeamResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/teams/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTeam(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeam")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.authorize(ctx, id); err != nil {
		handler.fail(writer, scope, err, "team access denied")

		return
	}

	team, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get team")

		return
	}

	response.WithJSON(writer, http.StatusOK, team)
}

// GetTeamBookings lists a team's bookings between start and end inclusive.
// @Summary Get team bookings in a date range
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/teams/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetTeamBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeamBookings")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	start := request.URL.Query().Get(constant.RequestParamStart)
	end := request.URL.Query().Get(constant.RequestParamEnd)

	for _, day := range []string{start, end} {
		if err := validator.ValidateVar(day, "required,isodate"); err != nil {
			handler.fail(writer, scope, err, "invalid date range")

			return
		}
	}

	if err := handler.authorize(ctx, id); err != nil {
		handler.fail(writer, scope, err, "team access denied")

		return
	}

	bookings, err := handler.bookings.GetTeamBookingsInRange(ctx, id, start, end)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get team bookings")

		return
	}

	var res bookingDto.GetBookingsResponse
	res.FromModels(bookings)

	response.WithJSON(writer, http.StatusOK, res)
}

// InviteMember invites an email address into the team.
// @Summary Invite a team member
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body invitationDto.CreateInvitationRequest true "Invitation"
// @Success 201 {object} response.Data[invitationDto.CreateInvitationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/teams/{id}/invitations [post]
// @Security BearerAuth
func (handler *Handler) InviteMember(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InviteMember")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	req := invitationDto.CreateInvitationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	id, err := handler.invitations.Create(ctx, chi.URLParam(request, constant.RequestParamID), req, identity)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create invitation")

		return
	}

	scope.AddEvent("Invitation created by user " + identity.UserID)

	response.WithJSON(writer, http.StatusCreated, invitationDto.CreateInvitationResponse{ID: id})
}

func (handler *Handler) authorize(ctx context.Context, teamID string) error {
	identity, err := access.Identity(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return access.Team(ctx, handler.users, identity, teamID) //nolint:wrapcheck
}
