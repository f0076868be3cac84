package outreach

import (
	"fmt"
	"strings"
)

type IssueCategory string

const (
	IssueSpamPhrase     IssueCategory = "spam_phrase"
	IssueBodyTooLong    IssueCategory = "body_too_long"
	IssueBodyTooShort   IssueCategory = "body_too_short"
	IssueSubjectTooLong IssueCategory = "subject_too_long"
	IssueMissingClosing IssueCategory = "missing_closing"
)

// Blocking reports whether an issue of this category fails the check.
// Too-short bodies and missing closings are advisory only.
func (c IssueCategory) Blocking() bool {
	switch c {
	case IssueSpamPhrase, IssueBodyTooLong, IssueSubjectTooLong:
		return true
	}
	return false
}

type Issue struct {
	Category IssueCategory `json:"category"`
	Message  string        `json:"message"`
}

type Result struct {
	Passed           bool    `json:"passed"`
	Issues           []Issue `json:"issues"`
	SanitizedSubject string  `json:"sanitized_subject,omitempty"`
	SanitizedBody    string  `json:"sanitized_body,omitempty"`
}

// Policy holds the compliance knobs for outreach messages.
type Policy struct {
	MaxBodyLength     int
	MinBodyLength     int
	MaxSubjectLength  int
	RequireDisclaimer bool

	// DisclaimerMarker identifies an already-disclaimed body so the footer
	// is never appended twice.
	DisclaimerMarker string
	DisclaimerFooter string

	Denylist []string
	Closings []string
}

const disclaimerMarker = "InternScout AI"

const disclaimerFooter = `
---
This email was generated with assistance from InternScout AI.
If you received this email in error or wish to opt-out of future communications,
please reply with "UNSUBSCRIBE" in the subject line.`

func DefaultPolicy() Policy {
	return Policy{
		MaxBodyLength:     2000,
		MinBodyLength:     100,
		MaxSubjectLength:  100,
		RequireDisclaimer: true,
		DisclaimerMarker:  disclaimerMarker,
		DisclaimerFooter:  disclaimerFooter,
		Denylist: []string{
			"guaranteed",
			"urgent",
			"act now",
			"limited time",
			"click here",
			"free money",
			"winner",
			"congratulations",
			"prize",
		},
		Closings: []string{"Best regards", "Sincerely", "Thank you"},
	}
}

// Check runs every compliance rule over the subject and body, accumulating
// issues without short-circuiting. The check fails only on blocking issues;
// soft issues are reported but do not prevent sending. On pass the sanitized
// subject and body are populated, on fail they are left empty and the caller
// must not send the content.
func (p Policy) Check(subject, body string) Result {
	issues := make([]Issue, 0, 4)

	issues = append(issues, p.denylistIssues(subject)...)
	issues = append(issues, p.denylistIssues(body)...)

	if n := len([]rune(body)); n > p.MaxBodyLength {
		issues = append(issues, Issue{
			Category: IssueBodyTooLong,
			Message:  fmt.Sprintf("Email body too long (%d chars, max %d)", n, p.MaxBodyLength),
		})
	}
	if n := len([]rune(body)); n < p.MinBodyLength {
		issues = append(issues, Issue{
			Category: IssueBodyTooShort,
			Message:  fmt.Sprintf("Email body too short (%d chars, min %d)", n, p.MinBodyLength),
		})
	}
	if n := len([]rune(subject)); n > p.MaxSubjectLength {
		issues = append(issues, Issue{
			Category: IssueSubjectTooLong,
			Message:  fmt.Sprintf("Subject line too long (%d chars, max %d)", n, p.MaxSubjectLength),
		})
	}

	if !p.hasClosing(body) {
		issues = append(issues, Issue{
			Category: IssueMissingClosing,
			Message:  "Email should include a professional closing",
		})
	}

	for _, issue := range issues {
		if issue.Category.Blocking() {
			return Result{Passed: false, Issues: issues}
		}
	}

	return Result{
		Passed:           true,
		Issues:           issues,
		SanitizedSubject: truncateRunes(subject, p.MaxSubjectLength),
		SanitizedBody:    p.ensureDisclaimer(body),
	}
}

// Check validates a message against the default policy.
func Check(subject, body string) Result {
	return DefaultPolicy().Check(subject, body)
}

func (p Policy) denylistIssues(text string) []Issue {
	lower := strings.ToLower(text)
	var issues []Issue
	for _, phrase := range p.Denylist {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			issues = append(issues, Issue{
				Category: IssueSpamPhrase,
				Message:  fmt.Sprintf("Contains potentially spam-like phrase: %q", phrase),
			})
		}
	}
	return issues
}

// hasClosing matches sign-off phrases case-sensitively: "best regards" buried
// mid-sentence is not a closing.
func (p Policy) hasClosing(body string) bool {
	for _, c := range p.Closings {
		if strings.Contains(body, c) {
			return true
		}
	}
	return false
}

func (p Policy) ensureDisclaimer(body string) string {
	if !p.RequireDisclaimer {
		return body
	}
	if p.DisclaimerMarker != "" && strings.Contains(body, p.DisclaimerMarker) {
		return body
	}
	return body + p.DisclaimerFooter
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
