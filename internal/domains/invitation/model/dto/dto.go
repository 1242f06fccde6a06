package dto

import (
	"flexwork/internal/domains/invitation/model"
	"flexwork/shared/constant"
	"flexwork/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r CreateInvitationRequest) ToModel(teamID, teamName, invitedBy string) model.Invitation {
	return model.Invitation{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		TeamName:  teamName,
		Email:     NormalizeEmail(r.Email),
		InvitedBy: invitedBy,
		Status:    model.StatusPending,
		CreatedAt: timezone.Now().Format(constant.DateFormat),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type CreateInvitationResponse struct {
	ID string `json:"id"`
}

type InvitationResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	TeamName  string `json:"teamName"`
	Email     string `json:"email"`
	InvitedBy string `json:"invitedBy"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (r *InvitationResponse) FromModel(model model.Invitation) {
	r.ID = model.ID
	r.TeamID = model.TeamID
	r.TeamName = model.TeamName
	r.Email = model.Email
	r.InvitedBy = model.InvitedBy
	r.Status = string(model.Status)
	r.CreatedAt = model.CreatedAt
}

type GetInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

func (r *GetInvitationsResponse) FromModels(models []model.Invitation) {
	r.Invitations = make([]InvitationResponse, len(models))
	for i, mod := range models {
		r.Invitations[i].FromModel(mod)
	}
}
