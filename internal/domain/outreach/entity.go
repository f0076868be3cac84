package outreach

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDrafted  Status = "drafted"
	StatusSent     Status = "sent"
	StatusReplied  Status = "replied"
	StatusRejected Status = "rejected"
)

var ErrInvalidTransition = errors.New("invalid status transition")

func (s Status) Valid() bool {
	switch s {
	case StatusDrafted, StatusSent, StatusReplied, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether the draft may move from s to next. A draft is
// sent before it can be replied to or rejected by the recipient; rejecting an
// unsent draft just abandons it.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusDrafted:
		return next == StatusSent || next == StatusRejected
	case StatusSent:
		return next == StatusReplied || next == StatusRejected
	}
	return false
}

type Draft struct {
	ID                uuid.UUID  `json:"id"`
	ProfileID         uuid.UUID  `json:"profile_id"`
	ListingID         string     `json:"listing_id"`
	Subject           string     `json:"subject"`
	Body              string     `json:"body"`
	Status            Status     `json:"status"`
	ComplianceChecked bool       `json:"compliance_checked"`
	CreatedAt         time.Time  `json:"created_at"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
}
