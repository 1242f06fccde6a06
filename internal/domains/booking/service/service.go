package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"flexwork/infras/otel"
	"flexwork/internal/domains/booking/model"
	"flexwork/internal/domains/booking/model/dto"
	"flexwork/internal/domains/booking/repository"
	notificationModel "flexwork/internal/domains/notification/model"
	teamService "flexwork/internal/domains/team/service"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	"flexwork/internal/events"
	"flexwork/shared"
	"flexwork/shared/constant"
	gDto "flexwork/shared/dto"
	"flexwork/shared/eventbus"
	"flexwork/shared/failure"
	"flexwork/shared/livequery"
	gRepo "flexwork/shared/repository"
	"flexwork/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	ErrPastDate         = failure.BadRequestFromString("booking date must not be in the past")
	ErrDuplicateBooking = failure.Conflict("an active booking already exists for this date")
	ErrTeamNotFound     = failure.BadRequestFromString("team not found")
	ErrNoManager        = failure.BadRequestFromString("team has no manager assigned")
	ErrBatchTooLarge    = failure.BadRequestFromString(fmt.Sprintf("a batch may contain at most %d bookings", constant.MaxBatchWrite))
	ErrNotFound         = repository.ErrNotFound
	ErrNotReviewer      = failure.Forbidden("only the assigned reviewer or an admin can review this booking")
	ErrNotOwner         = failure.Forbidden("only the requester can cancel this booking")
	ErrInvalidStatus    = failure.BadRequestFromString("status change not allowed")
)

type Booking interface {
	CreateBooking(ctx context.Context, in dto.CreateBookingInput) (string, error)
	GetUserBookings(ctx context.Context, userID string, params gDto.QueryParams) ([]model.Booking, int, error)
	GetUserBookingsForDate(ctx context.Context, userID, date string) ([]model.Booking, error)
	GetTeamBookingsInRange(ctx context.Context, teamID, start, end string) ([]model.Booking, error)
	GetBookingsForMonth(ctx context.Context, month string) ([]model.Booking, error)
	TeamBookingsStream(ctx context.Context, teamID string, year, month int) (*livequery.Subscription[model.Booking], error)
	TeamPendingRequestsStream(ctx context.Context, teamID string) (*livequery.Subscription[model.Booking], error)
	UpdateBookingStatus(ctx context.Context, id string, status model.Status, reviewerID string) error
	UpdateBookingStatusBatch(ctx context.Context, ids []string, status model.Status, reviewerID string) error
	ReviewBooking(ctx context.Context, id string, status model.Status, reviewer userDto.Identity) error
	ReviewBatch(ctx context.Context, ids []string, status model.Status, reviewer userDto.Identity) error
	CancelBooking(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	team      teamService.Team
	publisher events.Publisher
	banners   *eventbus.Bus[events.Banner]
	otel      otel.Otel
}

func New(repo repository.Booking, team teamService.Team, publisher events.Publisher, banners *eventbus.Bus[events.Banner], otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		team:      team,
		publisher: publisher,
		banners:   banners,
		otel:      otel,
	}
}

func byDate() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}
}

func eq(field string, value any) gDto.Filter {
	return gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func and(filters ...any) gDto.FilterGroup {
	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func dateRange(start, end string) []any {
	return []any{
		gDto.Filter{ArgName: "start", Field: model.FieldDate, Value: start, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		gDto.Filter{ArgName: "end", Field: model.FieldDate, Value: end, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
	}
}

// CreateBooking validates the request and stores a PENDING booking assigned to
// the team manager. Nothing is written when a check fails.
func (s *serviceImpl) CreateBooking(ctx context.Context, in dto.CreateBookingInput) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := model.ParseDate(in.Date)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	if date.Before(timezone.Today()) {
		return constant.Empty, ErrPastDate
	}

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, and(
		eq(model.FieldUserID, in.UserID),
		eq(model.FieldDate, in.Date),
		gDto.Filter{Field: model.FieldStatus, Value: model.InactiveStatuses(), Operator: gDto.FilterOperatorNotIn, Table: model.TableName},
	), model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing bookings")

		return constant.Empty, fmt.Errorf("failed to check existing bookings: %w", err)
	}

	if len(existing) > 0 {
		return constant.Empty, ErrDuplicateBooking
	}

	if in.TeamID == constant.Empty {
		return constant.Empty, ErrTeamNotFound
	}

	team, err := s.team.Get(ctx, in.TeamID)
	if errors.Is(err, teamService.ErrNotFound) {
		return constant.Empty, ErrTeamNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("teamId", in.TeamID).Msg("failed to load team")

		return constant.Empty, fmt.Errorf("failed to load team: %w", err)
	}

	if team.ManagerID == constant.Empty {
		return constant.Empty, ErrNoManager
	}

	booking := in.ToModel(team.ManagerID)

	if err = s.repo.Insert(ctx, booking); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return constant.Empty, ErrDuplicateBooking
		}

		log.Error().Err(err).Msg("failed to create booking")

		return constant.Empty, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, events.NewBookingEvent(events.TypeBookingRequested, booking.ID, booking.Status.String(), booking.ReviewerID))

	content := notificationModel.NewRequestContent(booking.UserName, booking.Date)
	s.banners.Publish(events.Banner{
		UserID:    booking.ReviewerID,
		Title:     content.Title,
		Body:      content.Body,
		BookingID: booking.ID,
		Status:    booking.Status.String(),
	})

	return booking.ID, nil
}

func (s *serviceImpl) list(ctx context.Context, name string, params gDto.QueryParams, filter gDto.FilterGroup) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+name)
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("query", name).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return res, nil
}

// GetUserBookings returns one page of the user's bookings and the total across
// all pages. Unset sorting falls back to ascending date.
func (s *serviceImpl) GetUserBookings(ctx context.Context, userID string, params gDto.QueryParams) ([]model.Booking, int, error) {
	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldDate
	}

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirAsc
	}

	filter := and(eq(model.FieldUserID, userID))

	bookings, err := s.list(ctx, "GetUserBookings", params, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to count bookings")

		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return bookings, total, nil
}

func (s *serviceImpl) GetUserBookingsForDate(ctx context.Context, userID, date string) ([]model.Booking, error) {
	return s.list(ctx, "GetUserBookingsForDate", byDate(), and(eq(model.FieldUserID, userID), eq(model.FieldDate, date)))
}

func (s *serviceImpl) GetTeamBookingsInRange(ctx context.Context, teamID, start, end string) ([]model.Booking, error) {
	return s.list(ctx, "GetTeamBookingsInRange", byDate(), and(append([]any{eq(model.FieldTeamID, teamID)}, dateRange(start, end)...)...))
}

func (s *serviceImpl) GetBookingsForMonth(ctx context.Context, month string) ([]model.Booking, error) {
	first, last, err := model.MonthRange(month)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return s.list(ctx, "GetBookingsForMonth", byDate(), and(dateRange(first, last)...))
}

func (s *serviceImpl) TeamBookingsStream(ctx context.Context, teamID string, year, month int) (*livequery.Subscription[model.Booking], error) {
	first, last, err := model.MonthRange(fmt.Sprintf("%04d-%02d", year, month))
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return s.repo.Watch(ctx, byDate(), and(append([]any{eq(model.FieldTeamID, teamID)}, dateRange(first, last)...)...)) //nolint:wrapcheck
}

func (s *serviceImpl) TeamPendingRequestsStream(ctx context.Context, teamID string) (*livequery.Subscription[model.Booking], error) {
	params := byDate()
	params.Limit = constant.MaxLiveRequests

	return s.repo.Watch(ctx, params, and(eq(model.FieldTeamID, teamID), eq(model.FieldStatus, model.StatusPending))) //nolint:wrapcheck
}

// UpdateBookingStatus writes status and reviewer id without checking the current state.
func (s *serviceImpl) UpdateBookingStatus(ctx context.Context, id string, status model.Status, reviewerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.UpdateStatus(ctx, id, status, reviewerID); err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publish(ctx, events.NewBookingEvent(events.TypeBookingStatusChanged, id, status.String(), reviewerID))

	return nil
}

// UpdateBookingStatusBatch commits all ids in one transaction.
func (s *serviceImpl) UpdateBookingStatusBatch(ctx context.Context, ids []string, status model.Status, reviewerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatusBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(ids) > constant.MaxBatchWrite {
		return ErrBatchTooLarge
	}

	if len(ids) == 0 {
		return nil
	}

	ids = shared.Unique(ids)

	if err = s.repo.UpdateStatusBatch(ctx, ids, status, reviewerID); err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("failed to update booking batch")

		return fmt.Errorf("failed to update booking batch: %w", err)
	}

	for _, id := range ids {
		s.publish(ctx, events.NewBookingEvent(events.TypeBookingStatusChanged, id, status.String(), reviewerID))
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, and(eq(model.FieldID, id)))
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, ErrNotFound
	}

	return booking, nil
}

func checkReview(booking model.Booking, status model.Status, reviewer userDto.Identity) error {
	if reviewer.Role != userModel.RoleAdmin && booking.ReviewerID != reviewer.UserID {
		return ErrNotReviewer
	}

	if !booking.Status.CanTransitionTo(status) {
		return ErrInvalidStatus
	}

	return nil
}

func checkReviewer(status model.Status, reviewer userDto.Identity) error {
	if !reviewer.Role.CanReviewBookings() {
		return failure.ForbiddenError
	}

	if !status.IsReviewOutcome() {
		return ErrInvalidStatus
	}

	return nil
}

// ReviewBooking approves or declines a pending booking.
func (s *serviceImpl) ReviewBooking(ctx context.Context, id string, status model.Status, reviewer userDto.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = checkReviewer(status, reviewer); err != nil {
		return err // nolint:wrapcheck
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if err = checkReview(booking, status, reviewer); err != nil {
		return err
	}

	if err = s.UpdateBookingStatus(ctx, id, status, reviewer.UserID); err != nil {
		return err
	}

	s.announce(booking, status, reviewer.Name)

	return nil
}

// ReviewBatch applies one review outcome to several pending bookings. Every
// booking is checked before anything is written.
func (s *serviceImpl) ReviewBatch(ctx context.Context, ids []string, status model.Status, reviewer userDto.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(ids) > constant.MaxBatchWrite {
		return ErrBatchTooLarge
	}

	if err = checkReviewer(status, reviewer); err != nil {
		return err // nolint:wrapcheck
	}

	if len(ids) == 0 {
		return nil
	}

	ids = shared.Unique(ids)

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, and(gDto.Filter{Field: model.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.TableName}))
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for review")

		return fmt.Errorf("failed to load bookings for review: %w", err)
	}

	if len(bookings) != len(ids) {
		return ErrNotFound
	}

	for _, booking := range bookings {
		if err = checkReview(booking, status, reviewer); err != nil {
			return err
		}
	}

	if err = s.UpdateBookingStatusBatch(ctx, ids, status, reviewer.UserID); err != nil {
		return err
	}

	for _, booking := range bookings {
		s.announce(booking, status, reviewer.Name)
	}

	return nil
}

// CancelBooking lets the requester withdraw a pending or approved booking.
func (s *serviceImpl) CancelBooking(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return ErrNotOwner
	}

	if !booking.Status.CanTransitionTo(model.StatusCancelled) {
		return ErrInvalidStatus
	}

	return s.UpdateBookingStatus(ctx, id, model.StatusCancelled, booking.ReviewerID)
}

func (s *serviceImpl) publish(ctx context.Context, event events.BookingEvent) {
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		log.Error().Err(err).Str("bookingId", event.BookingID).Str("type", event.Type).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) announce(booking model.Booking, status model.Status, reviewerName string) {
	content := notificationModel.StatusUpdateContent(status.String(), reviewerName, booking.Date)

	s.banners.Publish(events.Banner{
		UserID:    booking.UserID,
		Title:     content.Title,
		Body:      content.Body,
		BookingID: booking.ID,
		Status:    status.String(),
	})
}
