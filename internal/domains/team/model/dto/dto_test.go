package dto_test

import (
	"testing"

	"flexwork/internal/domains/team/model"
	"flexwork/internal/domains/team/model/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCreateTeamRequest_ToModel(t *testing.T) {
	req := dto.CreateTeamRequest{Name: "Platform", Description: "Infra people"}

	team := req.ToModel("m-1")

	assert.NotEmpty(t, team.ID)
	assert.Equal(t, "Platform", team.Name)
	assert.Equal(t, "m-1", team.ManagerID)
	assert.Equal(t, pq.StringArray{"m-1"}, team.MemberIDs)
	assert.True(t, team.HasMember("m-1"))
	assert.False(t, team.HasMember("u-2"))
}

func TestTeamResponse_RoundTrip(t *testing.T) {
	team := model.Team{ID: "t-1", Name: "Platform", MemberIDs: pq.StringArray{"m-1", "u-2"}, ManagerID: "m-1"}

	var res dto.TeamResponse
	res.FromModel(team)

	assert.Equal(t, []string{"m-1", "u-2"}, res.MemberIDs)
	assert.Equal(t, team, res.ToModel())
}
