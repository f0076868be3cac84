package outreach

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"internscout/internal/domain/listing"
	"internscout/internal/domain/profile"
)

// NewDraft builds a templated outreach draft for the given profile and
// listing, stamped with the caller's clock. The draft has not been through
// the compliance filter yet.
func NewDraft(p profile.Profile, l listing.Listing, at time.Time) Draft {
	return Draft{
		ID:        uuid.New(),
		ProfileID: p.ID,
		ListingID: l.ID,
		Subject:   generateSubject(p, l),
		Body:      generateBody(p, l),
		Status:    StatusDrafted,
		CreatedAt: at.UTC(),
	}
}

// Preview renders the subject and body without creating a draft.
func Preview(p profile.Profile, l listing.Listing) (subject, body string) {
	return generateSubject(p, l), generateBody(p, l)
}

func generateSubject(p profile.Profile, l listing.Listing) string {
	return fmt.Sprintf("Application for %s - %s (%s)", l.Title, p.Name, p.College)
}

func generateBody(p profile.Profile, l listing.Listing) string {
	skillSet := p.SkillSet()

	// Highlight skills the listing actually asks for, in the listing's own
	// wording; fall back to the student's top skills when nothing overlaps.
	matched := make([]string, 0, 3)
	for _, req := range l.RequiredSkills {
		if _, ok := skillSet[strings.ToLower(strings.TrimSpace(req))]; ok {
			matched = append(matched, req)
		}
	}

	highlighted := matched
	if len(highlighted) == 0 {
		highlighted = p.Skills
	}
	if len(highlighted) > 3 {
		highlighted = highlighted[:3]
	}

	skillsPhrase := "relevant technical skills"
	if len(highlighted) > 0 {
		skillsPhrase = strings.Join(highlighted, ", ")
	}

	return fmt.Sprintf(`Dear Hiring Team,

I am writing to express my strong interest in the %s position at %s. As a %s student at %s (graduating %d), I am eager to contribute to your team and grow as a professional.

My technical background includes %s, which I believe align well with the requirements for this role. I am particularly excited about this opportunity because %s is known for innovative work in this space.

I would welcome the opportunity to discuss how my skills and enthusiasm could benefit your team. I am available for an interview at your earliest convenience.

Thank you for considering my application. I look forward to hearing from you.

Best regards,
%s
%s
%s`,
		l.Title, l.Company, p.Degree, p.College, p.GraduationYear,
		skillsPhrase, l.Company,
		p.Name, p.Email, p.College)
}
