package stream

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/internal/domains/booking/model"
	"flexwork/internal/domains/booking/model/dto"
	bookingService "flexwork/internal/domains/booking/service"
	userService "flexwork/internal/domains/user/service"
	"flexwork/internal/events"
	"flexwork/internal/handlers/access"
	"flexwork/shared/constant"
	"flexwork/shared/eventbus"
	"flexwork/shared/failure"
	"flexwork/shared/livequery"
	"flexwork/shared/timezone"
	"flexwork/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var errInvalidPeriod = failure.BadRequestFromString("year and month must be numbers, month between 1 and 12")

type Handler struct {
	bookings bookingService.Booking
	users    userService.User
	banners  *eventbus.Bus[events.Banner]
	upgrader websocket.Upgrader
	otel     otel.Otel
}

func New(bookings bookingService.Booking, users userService.User, banners *eventbus.Bus[events.Banner], otel otel.Otel) Handler {
	return Handler{
		bookings: bookings,
		users:    users,
		banners:  banners,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Callers are authenticated by bearer token, not by cookie.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/streams", func(routerGroup chi.Router) {
		routerGroup.Get("/teams/{id}/bookings", handler.TeamBookings)
		routerGroup.Get("/teams/{id}/requests", handler.TeamPendingRequests)
		routerGroup.Get("/banners", handler.Banners)
	})
}

// TeamBookings streams every snapshot of a team's bookings in one month.
// Missing year or month default to the current month.
// @Summary Stream team bookings of a month
// @Tags Stream
// @Param id path string true "Team ID"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Router /v1/streams/teams/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) TeamBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TeamBookings")
	defer scope.End()

	teamID := chi.URLParam(request, constant.RequestParamID)

	year, month, err := period(request)
	if err == nil {
		err = handler.authorize(ctx, teamID)
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	handler.serveBookings(writer, request, func(ctx context.Context) (*livequery.Subscription[model.Booking], error) {
		return handler.bookings.TeamBookingsStream(ctx, teamID, year, month) //nolint:wrapcheck
	})
}

// TeamPendingRequests streams the oldest pending requests of a team.
// @Summary Stream pending team requests
// @Tags Stream
// @Param id path string true "Team ID"
// @Router /v1/streams/teams/{id}/requests [get]
// @Security BearerAuth
func (handler *Handler) TeamPendingRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TeamPendingRequests")
	defer scope.End()

	teamID := chi.URLParam(request, constant.RequestParamID)

	if err := handler.authorize(ctx, teamID); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	handler.serveBookings(writer, request, func(ctx context.Context) (*livequery.Subscription[model.Booking], error) {
		return handler.bookings.TeamPendingRequestsStream(ctx, teamID) //nolint:wrapcheck
	})
}

// Banners streams in-app banners addressed to the caller.
// @Summary Stream my in-app banners
// @Tags Stream
// @Router /v1/streams/banners [get]
// @Security BearerAuth
func (handler *Handler) Banners(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Banners")
	defer scope.End()

	identity, err := access.Identity(request.Context())
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	conn, err := handler.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade banner stream")

		return
	}

	sub := handler.banners.Subscribe(events.ForUser(identity.UserID))
	defer sub.Close()

	pump(request.Context(), conn, sub.C, func(banner events.Banner) any {
		return banner
	})
}

func (handler *Handler) serveBookings(
	writer http.ResponseWriter,
	request *http.Request,
	open func(ctx context.Context) (*livequery.Subscription[model.Booking], error),
) {
	conn, err := handler.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade booking stream")

		return
	}

	ctx, cancel := context.WithCancel(request.Context())
	defer cancel()

	sub, err := open(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to open booking stream")

		_ = conn.WriteJSON(dto.NewStreamFrame(nil, err))
		_ = conn.Close()

		return
	}
	defer sub.Close()

	pump(ctx, conn, sub.C, func(snapshot livequery.Snapshot[model.Booking]) any {
		return dto.NewStreamFrame(snapshot.Items, snapshot.Err)
	})
}

func (handler *Handler) authorize(ctx context.Context, teamID string) error {
	identity, err := access.Identity(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return access.Team(ctx, handler.users, identity, teamID) //nolint:wrapcheck
}

func period(request *http.Request) (year, month int, err error) {
	now := timezone.Now()
	year, month = now.Year(), int(now.Month())

	if raw := request.URL.Query().Get(constant.RequestParamYear); raw != constant.Empty {
		if year, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errInvalidPeriod
		}
	}

	if raw := request.URL.Query().Get(constant.RequestParamMonth); raw != constant.Empty {
		if month, err = strconv.Atoi(raw); err != nil || month < 1 || month > 12 {
			return 0, 0, errInvalidPeriod
		}
	}

	return year, month, nil
}
