package model

import "github.com/lib/pq"

const (
	TableName  = "teams"
	EntityName = "team"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldMemberIDs   = "member_ids"
	FieldManagerID   = "manager_id"
)

type Team struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	MemberIDs   pq.StringArray `db:"member_ids"`
	ManagerID   string         `db:"manager_id"`
}

func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}
