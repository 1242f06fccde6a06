package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID              = "id"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldRole            = "role"
	FieldTeamID          = "team_id"
	FieldFCMToken        = "fcm_token"
	FieldHomeLatitude    = "home_latitude"
	FieldHomeLongitude   = "home_longitude"
	FieldHomeLocationSet = "home_location_set"
)

// User.TeamID is empty while the user has not joined a team.
type User struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Email           string   `db:"email"`
	Role            Role     `db:"role"`
	TeamID          string   `db:"team_id"`
	FCMToken        *string  `db:"fcm_token"`
	HomeLatitude    *float64 `db:"home_latitude"`
	HomeLongitude   *float64 `db:"home_longitude"`
	HomeLocationSet bool     `db:"home_location_set"`
}

// PushToken returns the stored push token, or "" when none is registered.
func (u User) PushToken() string {
	if u.FCMToken == nil {
		return ""
	}

	return *u.FCMToken
}
