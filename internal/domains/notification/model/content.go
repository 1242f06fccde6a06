package model

import (
	"fmt"
	"time"
)

const displayDateFormat = "Mon, 02 Jan 2006"

// Content is the user-facing text of a notification.
type Content struct {
	Title string
	Body  string
}

// DisplayDate renders a calendar day for message bodies.
func DisplayDate(date time.Time) string {
	return date.Format(displayDateFormat)
}

// StatusUpdateContent is the message sent to a requester after a status change.
func StatusUpdateContent(status, reviewerName, date string) Content {
	switch status {
	case "APPROVED":
		return Content{
			Title: "Booking approved",
			Body:  fmt.Sprintf("%s approved your home office request for %s.", reviewerName, date),
		}
	case "DECLINED":
		return Content{
			Title: "Booking declined",
			Body:  fmt.Sprintf("%s declined your home office request for %s.", reviewerName, date),
		}
	default:
		return Content{
			Title: "Booking updated",
			Body:  fmt.Sprintf("Your home office request for %s is now %s.", date, status),
		}
	}
}

// NewRequestContent is the message sent to the reviewing manager.
func NewRequestContent(userName, date string) Content {
	return Content{
		Title: "New booking request",
		Body:  fmt.Sprintf("%s requested home office on %s.", userName, date),
	}
}
