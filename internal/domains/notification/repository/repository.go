package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/notification/model"
	"flexwork/shared"
	"flexwork/shared/changefeed"
	gDto "flexwork/shared/dto"
	"flexwork/shared/livequery"
	gRepo "flexwork/shared/repository"
	"flexwork/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Insert(ctx context.Context, model model.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Notification, error)
	GetPending(ctx context.Context, limit int) ([]model.Notification, error)
	Claim(ctx context.Context, id string) (bool, error)
	Complete(ctx context.Context, id, processStatus string) error
	WatchPending(ctx context.Context, limit int) (*livequery.Subscription[model.Notification], error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
	feed changefeed.Feed
}

func New(db *postgres.Connection, feed changefeed.Feed, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
		feed:       feed,
	}
}

func unprocessed() gDto.FilterGroup {
	return shared.FilterByField(model.FieldProcessed, false, model.TableName)
}

func (r *repositoryImpl) Insert(ctx context.Context, notification model.Notification) error {
	if err := r.Repository.Insert(ctx, notification); err != nil {
		return err
	}

	if err := r.feed.Publish(context.WithoutCancel(ctx), changefeed.TopicNotifications); err != nil {
		log.Error().Err(err).Msg("failed to publish notification change")
	}

	return nil
}

// GetPending returns the oldest unprocessed notifications first.
func (r *repositoryImpl) GetPending(ctx context.Context, limit int) ([]model.Notification, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return r.GetAll(ctx, params, unprocessed()) //nolint:wrapcheck
}

// Claim marks the notification as taken. It reports false when another worker
// claimed it first, in which case the caller must not send it.
func (r *repositoryImpl) Claim(ctx context.Context, id string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByID(id, model.FieldID, model.TableName),
			unprocessed(),
		},
	}

	affected, err := r.UpdateAffected(ctx, map[string]any{
		model.FieldProcessed:     true,
		model.FieldProcessStatus: model.ProcessStatusProcessing,
	}, filter)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected == 1, nil
}

func (r *repositoryImpl) Complete(ctx context.Context, id, processStatus string) error {
	return r.Update(ctx, map[string]any{ //nolint:wrapcheck
		model.FieldProcessed:     true,
		model.FieldProcessStatus: processStatus,
		model.FieldProcessedAt:   timezone.Now(),
	}, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (r *repositoryImpl) WatchPending(ctx context.Context, limit int) (*livequery.Subscription[model.Notification], error) {
	return livequery.Watch(ctx, r.feed, changefeed.TopicNotifications, func(ctx context.Context) ([]model.Notification, error) { //nolint:wrapcheck
		return r.GetPending(ctx, limit)
	})
}
