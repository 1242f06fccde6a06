package model

const (
	TableName  = "team_invitations"
	EntityName = "team_invitation"

	FieldID        = "id"
	FieldTeamID    = "team_id"
	FieldTeamName  = "team_name"
	FieldEmail     = "email"
	FieldInvitedBy = "invited_by"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
)

// Invitation.Email is stored lower-cased; CreatedAt is RFC3339.
type Invitation struct {
	ID        string `db:"id"`
	TeamID    string `db:"team_id"`
	TeamName  string `db:"team_name"`
	Email     string `db:"email"`
	InvitedBy string `db:"invited_by"`
	Status    Status `db:"status"`
	CreatedAt string `db:"created_at"`
}
