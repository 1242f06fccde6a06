package dto_test

import (
	"context"
	"testing"

	"flexwork/internal/domains/user/model"
	"flexwork/internal/domains/user/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_ToModel(t *testing.T) {
	identity := dto.Identity{UserID: "u-1", Name: "Ana", Email: "ana@example.com", Role: model.RoleManager}

	user := identity.ToModel()

	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, model.RoleManager, user.Role)
	assert.Empty(t, user.TeamID)
	assert.Nil(t, user.FCMToken)
}

func TestUserResponse_FromModel(t *testing.T) {
	token := "device-token"
	lat := 52.52

	var res dto.UserResponse
	res.FromModel(model.User{
		ID:              "u-1",
		Name:            "Ana",
		Role:            model.RoleAdmin,
		TeamID:          "t-1",
		FCMToken:        &token,
		HomeLatitude:    &lat,
		HomeLocationSet: true,
	})

	assert.Equal(t, "admin", res.Role)
	assert.Equal(t, "t-1", res.TeamID)
	assert.True(t, res.HasPushToken)
	assert.Equal(t, &lat, res.HomeLatitude)
	assert.True(t, res.HomeLocationSet)
}

func TestUpdateHomeLocationRequest_ToFields(t *testing.T) {
	fields := dto.UpdateHomeLocationRequest{Latitude: 1.5, Longitude: -2.5}.ToFields()

	assert.Equal(t, map[string]any{
		model.FieldHomeLatitude:    1.5,
		model.FieldHomeLongitude:   -2.5,
		model.FieldHomeLocationSet: true,
	}, fields)
}

func TestIdentityFromContext(t *testing.T) {
	_, ok := dto.IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := dto.WithIdentity(context.Background(), dto.Identity{UserID: "u-1", Name: "Ana", Role: model.RoleManager})

	identity, ok := dto.IdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Ana", identity.Name)
	assert.True(t, identity.Role.CanReviewBookings())
}
