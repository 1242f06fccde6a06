package model

import (
	"flexwork/shared/constant"
	"flexwork/shared/timezone"
	"fmt"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldUserName   = "user_name"
	FieldTeamID     = "team_id"
	FieldDate       = "date"
	FieldType       = "type"
	FieldStatus     = "status"
	FieldComment    = "comment"
	FieldCreatedAt  = "created_at"
	FieldReviewerID = "reviewer_id"
)

// SortableFields are the columns a client may order booking lists by.
var SortableFields = []string{FieldDate, FieldCreatedAt, FieldStatus}

type Type string

const TypeHomeOffice Type = "HOME_OFFICE"

// Booking.Date holds the calendar day as "YYYY-MM-DD"; CreatedAt is RFC3339.
type Booking struct {
	ID         string `db:"id"`
	UserID     string `db:"user_id"`
	UserName   string `db:"user_name"`
	TeamID     string `db:"team_id"`
	Date       string `db:"date"`
	Type       Type   `db:"type"`
	Status     Status `db:"status"`
	Comment    string `db:"comment"`
	CreatedAt  string `db:"created_at"`
	ReviewerID string `db:"reviewer_id"`
}

// CalendarDate is the booked day at midnight in the application timezone.
func (b Booking) CalendarDate() (time.Time, error) {
	return ParseDate(b.Date)
}

func ParseDate(value string) (time.Time, error) {
	date, err := timezone.Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date %q: %w", value, err)
	}

	return date, nil
}

// FormatDate renders the calendar day of t in the application timezone.
func FormatDate(t time.Time) string {
	return timezone.Format(t, constant.DayFormat)
}

// MonthRange returns the first and last day of month ("YYYY-MM") as stored dates.
func MonthRange(month string) (first, last string, err error) {
	start, err := timezone.Parse(constant.MonthFormat, month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}

	return FormatDate(start), FormatDate(start.AddDate(0, 1, -1)), nil
}
