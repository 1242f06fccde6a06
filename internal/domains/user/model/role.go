package model

import (
	"database/sql/driver"
	"fmt"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func ParseRole(value string) (Role, error) {
	switch role := Role(value); role {
	case RoleUser, RoleManager, RoleAdmin:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// RoleOrDefault parses value and falls back to RoleUser.
func RoleOrDefault(value string) Role {
	role, err := ParseRole(value)
	if err != nil {
		return RoleUser
	}

	return role
}

func (r Role) String() string {
	return string(r)
}

func (r Role) isPrivileged() bool {
	return r == RoleManager || r == RoleAdmin
}

func (r Role) CanReviewBookings() bool {
	return r.isPrivileged()
}

func (r Role) CanManageTeams() bool {
	return r.isPrivileged()
}

func (r Role) CanExportBookings() bool {
	return r.isPrivileged()
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// Scan maps unknown stored values to RoleUser.
func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*r = RoleOrDefault(v)
	case []byte:
		*r = RoleOrDefault(string(v))
	case nil:
		*r = RoleUser
	default:
		return fmt.Errorf("cannot scan %T into Role", src)
	}

	return nil
}
