package model

import (
	"fmt"
	"slices"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDeclined  Status = "DECLINED"
	StatusCancelled Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusDeclined, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

func ParseStatus(value string) (Status, error) {
	switch status := Status(value); status {
	case StatusPending, StatusApproved, StatusDeclined, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", value)
	}
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether a booking in this status still occupies its day.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != StatusDeclined
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// IsReviewOutcome reports whether a reviewer may set this status.
func (s Status) IsReviewOutcome() bool {
	return s == StatusApproved || s == StatusDeclined
}

// InactiveStatuses lists the statuses excluded from "active" queries.
func InactiveStatuses() []string {
	return []string{StatusCancelled.String(), StatusDeclined.String()}
}
