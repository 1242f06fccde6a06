package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/invitation/model"
	gDto "flexwork/shared/dto"
	gRepo "flexwork/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Invitation interface {
	Insert(ctx context.Context, model model.Invitation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invitation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invitation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Invitation]
}

func New(db *postgres.Connection, otel otel.Otel) Invitation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invitation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
