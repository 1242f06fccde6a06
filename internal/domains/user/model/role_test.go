package model_test

import (
	"flexwork/internal/domains/user/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, value := range []string{"user", "manager", "admin"} {
		role, err := model.ParseRole(value)
		require.NoError(t, err)
		assert.Equal(t, value, role.String())
	}

	_, err := model.ParseRole("Manager")
	assert.Error(t, err)

	assert.Equal(t, model.RoleUser, model.RoleOrDefault("superuser"))
}

func TestRole_Permissions(t *testing.T) {
	tests := []struct {
		role   model.Role
		review bool
		teams  bool
		export bool
	}{
		{role: model.RoleUser},
		{role: model.RoleManager, review: true, teams: true, export: true},
		{role: model.RoleAdmin, review: true, teams: true, export: true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.review, tt.role.CanReviewBookings())
			assert.Equal(t, tt.teams, tt.role.CanManageTeams())
			assert.Equal(t, tt.export, tt.role.CanExportBookings())
		})
	}
}

func TestRole_Scan(t *testing.T) {
	var role model.Role

	require.NoError(t, role.Scan("admin"))
	assert.Equal(t, model.RoleAdmin, role)

	require.NoError(t, role.Scan([]byte("bogus")))
	assert.Equal(t, model.RoleUser, role)

	assert.Error(t, role.Scan(42))
}

func TestUser_PushToken(t *testing.T) {
	token := "tok"

	assert.Equal(t, "", model.User{}.PushToken())
	assert.Equal(t, "tok", model.User{FCMToken: &token}.PushToken())
}
