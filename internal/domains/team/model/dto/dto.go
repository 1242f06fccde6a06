package dto

import (
	"flexwork/internal/domains/team/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateTeamRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	ManagerID   string `json:"managerId"   validate:"omitempty"`
}

// ToModel makes managerID the first member of the new team.
func (r *CreateTeamRequest) ToModel(managerID string) model.Team {
	return model.Team{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Description: r.Description,
		MemberIDs:   pq.StringArray{managerID},
		ManagerID:   managerID,
	}
}

type TeamResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MemberIDs   []string `json:"memberIds"`
	ManagerID   string   `json:"managerId"`
}

func (r *TeamResponse) FromModel(model model.Team) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.MemberIDs = append([]string{}, model.MemberIDs...)
	r.ManagerID = model.ManagerID
}

func (r TeamResponse) ToModel() model.Team {
	return model.Team{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		MemberIDs:   pq.StringArray(r.MemberIDs),
		ManagerID:   r.ManagerID,
	}
}

type CreateTeamResponse struct {
	ID string `json:"id"`
}
