package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/team/model"
	"flexwork/shared/constant"
	gDto "flexwork/shared/dto"
	"flexwork/shared/logger"
	gRepo "flexwork/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const queryAddMember = `UPDATE teams SET member_ids = array_append(member_ids, :user_id)
WHERE id = :id AND NOT (:user_id = ANY(member_ids))`

type Team interface {
	Insert(ctx context.Context, model model.Team) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Team) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Team, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	AddMemberTx(ctx context.Context, sqltx *sqlx.Tx, teamID, userID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Team]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Team {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Team](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// AddMemberTx appends userID to the member list unless it is already there.
func (r *repositoryImpl) AddMemberTx(ctx context.Context, sqltx *sqlx.Tx, teamID, userID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".team.AddMemberTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAddMember)

	_, err := sqltx.NamedExecContext(ctx, queryAddMember, map[string]any{
		model.FieldID: teamID,
		"user_id":     userID,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to add team member: %w", err)
	}

	return nil
}
