// Package access holds the authorization checks shared by several handlers.
package access

import (
	"context"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	userService "flexwork/internal/domains/user/service"
	"flexwork/shared/failure"
	"fmt"
)

// Identity returns the authenticated caller or an unauthorized failure.
func Identity(ctx context.Context) (userDto.Identity, error) {
	identity, ok := userDto.IdentityFromContext(ctx)
	if !ok {
		return identity, failure.Unauthorized("unauthorized") // nolint:wrapcheck
	}

	return identity, nil
}

// Team allows admins everywhere and other callers only inside their own team.
func Team(ctx context.Context, users userService.User, identity userDto.Identity, teamID string) error {
	if identity.Role == userModel.RoleAdmin {
		return nil
	}

	user, err := users.Get(ctx, identity.UserID)
	if err != nil {
		return fmt.Errorf("failed to load caller: %w", err)
	}

	if user.TeamID != teamID {
		return failure.ResourceRestrictedError
	}

	return nil
}
