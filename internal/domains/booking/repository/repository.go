package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/booking/model"
	"flexwork/shared"
	"flexwork/shared/changefeed"
	"flexwork/shared/constant"
	gDto "flexwork/shared/dto"
	"flexwork/shared/failure"
	"flexwork/shared/livequery"
	gRepo "flexwork/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when an update matches fewer bookings than requested.
var ErrNotFound = failure.NotFound("booking not found")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, id string, status model.Status, reviewerID string) error
	UpdateStatusBatch(ctx context.Context, ids []string, status model.Status, reviewerID string) error
	Watch(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (*livequery.Subscription[model.Booking], error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	feed changefeed.Feed
	otel otel.Otel
}

func New(db *postgres.Connection, feed changefeed.Feed, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		feed:       feed,
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	if err := r.Repository.Insert(ctx, booking); err != nil {
		return err
	}

	r.changed(ctx)

	return nil
}

func statusFields(status model.Status, reviewerID string) map[string]any {
	return map[string]any{
		model.FieldStatus:     status,
		model.FieldReviewerID: reviewerID,
	}
}

// UpdateStatus writes exactly status and reviewer_id of one booking.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, status model.Status, reviewerID string) error {
	affected, err := r.UpdateAffected(ctx, statusFields(status, reviewerID), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return ErrNotFound
	}

	r.changed(ctx)

	return nil
}

// UpdateStatusBatch applies one status to all ids atomically. Nothing is
// written unless every id matches a booking.
func (r *repositoryImpl) UpdateStatusBatch(ctx context.Context, ids []string, status model.Status, reviewerID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusBatch")
	defer scope.End()

	ids = shared.Unique(ids)
	scope.SetAttribute("count", len(ids))

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, err := r.UpdateAffectedTx(ctx, tx, statusFields(status, reviewerID), filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if affected != int64(len(ids)) {
			return ErrNotFound
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update booking batch: %w", err)
	}

	r.changed(ctx)

	return nil
}

func (r *repositoryImpl) Watch(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (*livequery.Subscription[model.Booking], error) {
	return livequery.Watch(ctx, r.feed, changefeed.TopicBookings, func(ctx context.Context) ([]model.Booking, error) { //nolint:wrapcheck
		return r.GetAll(ctx, params, filter)
	})
}

func (r *repositoryImpl) changed(ctx context.Context) {
	if err := r.feed.Publish(context.WithoutCancel(ctx), changefeed.TopicBookings); err != nil {
		log.Error().Err(err).Msg("failed to publish booking change")
	}
}
