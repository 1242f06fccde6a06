package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Invitation=MockInvitationService

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/invitation/model"
	"flexwork/internal/domains/invitation/model/dto"
	"flexwork/internal/domains/invitation/repository"
	teamRepo "flexwork/internal/domains/team/repository"
	teamService "flexwork/internal/domains/team/service"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	userRepo "flexwork/internal/domains/user/repository"
	userService "flexwork/internal/domains/user/service"
	"flexwork/shared"
	"flexwork/shared/constant"
	gDto "flexwork/shared/dto"
	"flexwork/shared/failure"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound       = failure.NotFound("invitation not found")
	ErrForbidden      = failure.Forbidden("only the team manager or an admin can invite members")
	ErrNotInvitee     = failure.Forbidden("this invitation was sent to another address")
	ErrAlreadyInvited = failure.Conflict("a pending invitation already exists for this address")
	ErrNotPending     = failure.Conflict("invitation was already answered")
)

type Invitation interface {
	Create(ctx context.Context, teamID string, req dto.CreateInvitationRequest, inviter userDto.Identity) (string, error)
	ListMine(ctx context.Context, identity userDto.Identity) (dto.GetInvitationsResponse, error)
	// Accept moves the user into the team and marks the invitation in one transaction.
	Accept(ctx context.Context, id string, identity userDto.Identity) error
	Decline(ctx context.Context, id string, identity userDto.Identity) error
}

type serviceImpl struct {
	repo     repository.Invitation
	teamRepo teamRepo.Team
	userRepo userRepo.User
	teams    teamService.Team
	users    userService.User
	tx       postgres.Transactor
	otel     otel.Otel
}

func New(
	repo repository.Invitation,
	teamRepo teamRepo.Team,
	userRepo userRepo.User,
	teams teamService.Team,
	users userService.User,
	tx postgres.Transactor,
	otel otel.Otel,
) Invitation {
	return &serviceImpl{
		repo:     repo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		teams:    teams,
		users:    users,
		tx:       tx,
		otel:     otel,
	}
}

func pendingFor(email string) []any {
	return []any{
		gDto.Filter{Field: model.FieldEmail, Value: dto.NormalizeEmail(email), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}
}

func (s *serviceImpl) Create(ctx context.Context, teamID string, req dto.CreateInvitationRequest, inviter userDto.Identity) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	team, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return constant.Empty, err // nolint:wrapcheck
	}

	if inviter.Role != userModel.RoleAdmin && team.ManagerID != inviter.UserID {
		return constant.Empty, ErrForbidden
	}

	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: append(pendingFor(req.Email),
			gDto.Filter{Field: model.FieldTeamID, Value: teamID, Operator: gDto.FilterOperatorEq, Table: model.TableName}),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing invitations")

		return constant.Empty, fmt.Errorf("failed to check existing invitations: %w", err)
	}

	if exist {
		return constant.Empty, ErrAlreadyInvited
	}

	invitation := req.ToModel(team.ID, team.Name, inviter.UserID)

	if err = s.repo.Insert(ctx, invitation); err != nil {
		log.Error().Err(err).Str("teamId", teamID).Msg("failed to create invitation")

		return constant.Empty, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation.ID, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, identity userDto.Identity) (res dto.GetInvitationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	invitations, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: pendingFor(identity.Email)})
	if err != nil {
		log.Error().Err(err).Msg("failed to get invitations")

		return res, fmt.Errorf("failed to get invitations: %w", err)
	}

	res.FromModels(invitations)

	return res, nil
}

func (s *serviceImpl) pending(ctx context.Context, id string, identity userDto.Identity) (model.Invitation, error) {
	invitation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("invitationId", id).Msg("failed to get invitation")

		return invitation, fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.ID == constant.Empty {
		return invitation, ErrNotFound
	}

	if invitation.Email != dto.NormalizeEmail(identity.Email) {
		return invitation, ErrNotInvitee
	}

	if invitation.Status != model.StatusPending {
		return invitation, ErrNotPending
	}

	return invitation, nil
}

func (s *serviceImpl) Accept(ctx context.Context, id string, identity userDto.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer scope.TraceIfError(err)

	invitation, err := s.pending(ctx, id, identity)
	if err != nil {
		return err // nolint:wrapcheck
	}

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		userFields := map[string]any{userModel.FieldTeamID: invitation.TeamID}
		if err := s.userRepo.UpdateTx(ctx, tx, userFields, shared.FilterByID(identity.UserID, userModel.FieldID, userModel.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.teamRepo.AddMemberTx(ctx, tx, invitation.TeamID, identity.UserID); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.UpdateTx(ctx, tx, map[string]any{model.FieldStatus: model.StatusAccepted}, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("invitationId", id).Msg("failed to accept invitation")

		return fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.teams.Invalidate(ctx, invitation.TeamID)
	s.users.Invalidate(ctx, identity.UserID)

	return nil
}

func (s *serviceImpl) Decline(ctx context.Context, id string, identity userDto.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decline")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.pending(ctx, id, identity); err != nil {
		return err // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{model.FieldStatus: model.StatusDeclined}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("invitationId", id).Msg("failed to decline invitation")

		return fmt.Errorf("failed to decline invitation: %w", err)
	}

	return nil
}
