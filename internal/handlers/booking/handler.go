package booking

import (
	"flexwork/infras/otel"
	"flexwork/internal/domains/booking/model"
	"flexwork/internal/domains/booking/model/dto"
	"flexwork/internal/domains/booking/service"
	exportService "flexwork/internal/domains/export/service"
	userService "flexwork/internal/domains/user/service"
	"flexwork/internal/handlers/access"
	"flexwork/shared/constant"
	gDto "flexwork/shared/dto"
	"flexwork/shared/validator"
	"flexwork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	users   userService.User
	export  exportService.Export
	otel    otel.Otel
}

func New(service service.Booking, users userService.User, export exportService.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		users:   users,
		export:  export,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/me", handler.GetMyBookings)
		routerGroup.Get("/me/{date}", handler.GetMyBookingsForDate)
		routerGroup.Get("/month/{month}", handler.GetBookingsForMonth)
		routerGroup.Post("/export/{month}", handler.ExportMonth)
		routerGroup.Post("/review-batch", handler.ReviewBatch)
		routerGroup.Patch("/{id}/review", handler.ReviewBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

func (handler *Handler) fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(writer, err)
}

func writeBookings(writer http.ResponseWriter, bookings []model.Booking) {
	var res dto.GetBookingsResponse
	res.FromModels(bookings)

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking files a home office request for the caller in their team.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	user, err := handler.users.Get(ctx, identity.UserID)
	if err != nil {
		handler.fail(writer, scope, err, "failed to load requester")

		return
	}

	name := user.Name
	if name == constant.Empty {
		name = identity.Name
	}

	id, err := handler.service.CreateBooking(ctx, req.ToInput(identity.UserID, name, user.TeamID))
	if err != nil {
		handler.fail(writer, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("Booking created successfully by user " + identity.UserID)

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{ID: id})
}

// GetMyBookings lists the caller's bookings, by date unless sort_by says otherwise.
// Without page and limit the whole list is returned.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "date, created_at or status"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[dto.GetBookingsPageResponse]
// @Router /v1/bookings/me [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	var params gDto.QueryParams
	params.FromRequest(request, false, model.SortableFields...)

	bookings, total, err := handler.service.GetUserBookings(ctx, identity.UserID, params)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get user bookings")

		return
	}

	var res dto.GetBookingsPageResponse
	res.FromModels(bookings, params, total)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyBookingsForDate lists the caller's bookings on one day.
// @Summary Get my bookings for a date
// @Tags Booking
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/me/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookingsForDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookingsForDate")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	date := chi.URLParam(request, constant.RequestParamDate)
	if err := validator.ValidateVar(date, "isodate"); err != nil {
		handler.fail(writer, scope, err, "invalid date")

		return
	}

	bookings, err := handler.service.GetUserBookingsForDate(ctx, identity.UserID, date)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get user bookings for date")

		return
	}

	writeBookings(writer, bookings)
}

// GetBookingsForMonth lists every booking of a month.
// @Summary Get bookings for a month
// @Tags Booking
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/bookings/month/{month} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsForMonth(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsForMonth")
	defer scope.End()

	month := chi.URLParam(request, constant.RequestParamMonth)
	if err := validator.ValidateVar(month, "yearmonth"); err != nil {
		handler.fail(writer, scope, err, "invalid month")

		return
	}

	bookings, err := handler.service.GetBookingsForMonth(ctx, month)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get bookings for month")

		return
	}

	writeBookings(writer, bookings)
}

// ExportMonth writes a month of bookings to a spreadsheet and returns its URL.
// @Summary Export bookings of a month
// @Tags Booking
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 201 {object} response.Data[exportService.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/bookings/export/{month} [post]
// @Security BearerAuth
func (handler *Handler) ExportMonth(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportMonth")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	month := chi.URLParam(request, constant.RequestParamMonth)
	if err := validator.ValidateVar(month, "yearmonth"); err != nil {
		handler.fail(writer, scope, err, "invalid month")

		return
	}

	res, err := handler.export.Export(ctx, month, identity)
	if err != nil {
		handler.fail(writer, scope, err, "failed to export bookings")

		return
	}

	scope.AddEvent("Bookings exported by user " + identity.UserID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// ReviewBooking approves or declines one request.
// @Summary Review a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ReviewBookingRequest true "Review"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/review [patch]
// @Security BearerAuth
func (handler *Handler) ReviewBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewBooking")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	req := dto.ReviewBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.ReviewBooking(ctx, id, model.Status(req.Status), identity); err != nil {
		handler.fail(writer, scope, err, "failed to review booking")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking reviewed successfully")
}

// ReviewBatch applies one review outcome to many requests atomically.
// @Summary Review bookings in batch
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ReviewBatchRequest true "Batch review"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/bookings/review-batch [post]
// @Security BearerAuth
func (handler *Handler) ReviewBatch(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewBatch")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	req := dto.ReviewBatchRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.ReviewBatch(ctx, req.IDs, model.Status(req.Status), identity); err != nil {
		handler.fail(writer, scope, err, "failed to review bookings")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Bookings reviewed successfully")
}

// CancelBooking withdraws one of the caller's bookings.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	identity, err := access.Identity(ctx)
	if err != nil {
		handler.fail(writer, scope, err, "failed to get identity from context")

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.CancelBooking(ctx, id, identity.UserID); err != nil {
		handler.fail(writer, scope, err, "failed to cancel booking")

		return
	}

	scope.AddEvent("Booking cancelled by user " + identity.UserID)

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}
