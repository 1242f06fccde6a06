package dto

import (
	"context"
	"flexwork/internal/domains/user/model"
	"flexwork/shared/constant"
)

// Identity is the caller as described by a validated access token.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   model.Role
}

// IdentityFromContext reads the caller placed on ctx by the auth middleware.
// ok is false for unauthenticated contexts.
func IdentityFromContext(ctx context.Context) (identity Identity, ok bool) {
	identity.UserID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	identity.Name, _ = ctx.Value(constant.ContextKeyUserName).(string)
	identity.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	identity.Role = model.RoleOrDefault(role)

	return identity, identity.UserID != ""
}

// WithIdentity stores identity on ctx the way the auth middleware does.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, identity.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, identity.Name)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, identity.Email)

	return context.WithValue(ctx, constant.ContextKeyUserRole, identity.Role.String())
}

func (i Identity) ToModel() model.User {
	return model.User{
		ID:    i.UserID,
		Name:  i.Name,
		Email: i.Email,
		Role:  i.Role,
	}
}

type UserResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	TeamID          string   `json:"teamId"`
	HasPushToken    bool     `json:"hasPushToken"`
	HomeLatitude    *float64 `json:"homeLatitude,omitempty"`
	HomeLongitude   *float64 `json:"homeLongitude,omitempty"`
	HomeLocationSet bool     `json:"homeLocationSet"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role.String()
	r.TeamID = model.TeamID
	r.HasPushToken = model.PushToken() != ""
	r.HomeLatitude = model.HomeLatitude
	r.HomeLongitude = model.HomeLongitude
	r.HomeLocationSet = model.HomeLocationSet
}

type UpdateHomeLocationRequest struct {
	Latitude  float64 `json:"latitude"  validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func (r UpdateHomeLocationRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldHomeLatitude:    r.Latitude,
		model.FieldHomeLongitude:   r.Longitude,
		model.FieldHomeLocationSet: true,
	}
}
