package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	College        string    `json:"college"`
	Degree         string    `json:"degree"`
	GraduationYear int       `json:"graduation_year"`

	Skills     []string `json:"skills"`
	ResumeText string   `json:"-"`

	Preferences Preferences `json:"preferences"`

	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Preferences struct {
	Roles     []string `json:"preferred_roles"`
	Locations []string `json:"preferred_locations"`
	Types     []string `json:"internship_types"`
}

// SkillSet returns the profile's skills keyed by their case-folded form,
// keeping the original casing as the value for display.
func (p Profile) SkillSet() map[string]string {
	set := make(map[string]string, len(p.Skills))
	for _, s := range p.Skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := set[key]; !ok {
			set[key] = strings.TrimSpace(s)
		}
	}
	return set
}

// FoldSet case-folds a preference list into a membership set. Duplicates
// collapse, order is irrelevant.
func FoldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}
