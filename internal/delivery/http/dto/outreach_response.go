package dto

import (
	"time"

	"github.com/google/uuid"

	"internscout/internal/domain/outreach"
)

type DraftResponse struct {
	ID                uuid.UUID  `json:"id"`
	ListingID         string     `json:"listing_id"`
	Subject           string     `json:"subject"`
	Body              string     `json:"body"`
	Status            string     `json:"status"`
	ComplianceChecked bool       `json:"compliance_checked"`
	CreatedAt         time.Time  `json:"created_at"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
}

type ComplianceIssueResponse struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func NewDraftResponse(d outreach.Draft) DraftResponse {
	return DraftResponse{
		ID:                d.ID,
		ListingID:         d.ListingID,
		Subject:           d.Subject,
		Body:              d.Body,
		Status:            string(d.Status),
		ComplianceChecked: d.ComplianceChecked,
		CreatedAt:         d.CreatedAt,
		SentAt:            d.SentAt,
	}
}

func NewComplianceIssueResponses(issues []outreach.Issue) []ComplianceIssueResponse {
	out := make([]ComplianceIssueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, ComplianceIssueResponse{
			Category: string(issue.Category),
			Message:  issue.Message,
		})
	}
	return out
}
