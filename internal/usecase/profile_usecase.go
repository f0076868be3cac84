package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"internscout/internal/domain/profile"
	"internscout/internal/domain/resume"
	"internscout/internal/repository"
)

type ProfileUpdateInput struct {
	Name               *string
	College            *string
	Degree             *string
	GraduationYear     *int
	Skills             *[]string
	Preferences        *profile.Preferences
	OnboardingComplete *bool
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (profile.Profile, error)
	ParseResume(ctx context.Context, userID uuid.UUID, resumeText string) (resume.Parsed, profile.Profile, error)
}

type Profiles struct {
	profiles repository.ProfileRepository

	now func() time.Time
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profiles {
	return &Profiles{profiles: profiles, now: time.Now}
}

func (u *Profiles) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return sanitizeProfile(p), nil
}

func (u *Profiles) Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, ErrInternal
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.College != nil {
		p.College = strings.TrimSpace(*in.College)
	}
	if in.Degree != nil {
		p.Degree = strings.TrimSpace(*in.Degree)
	}
	if in.GraduationYear != nil {
		p.GraduationYear = *in.GraduationYear
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.Preferences != nil {
		p.Preferences = *in.Preferences
	}
	if in.OnboardingComplete != nil {
		p.OnboardingComplete = *in.OnboardingComplete
	}
	p.UpdatedAt = u.now().UTC()

	updated, err := u.profiles.Update(ctx, p)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}
	return sanitizeProfile(updated), nil
}

// ParseResume extracts skills from resume text and stores both on the
// profile, replacing any previously detected skills.
func (u *Profiles) ParseResume(ctx context.Context, userID uuid.UUID, resumeText string) (resume.Parsed, profile.Profile, error) {
	if userID == uuid.Nil {
		return resume.Parsed{}, profile.Profile{}, ErrUnauthorized
	}
	if strings.TrimSpace(resumeText) == "" {
		return resume.Parsed{}, profile.Profile{}, ErrInvalidInput
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return resume.Parsed{}, profile.Profile{}, ErrProfileNotFound
		}
		return resume.Parsed{}, profile.Profile{}, ErrInternal
	}

	parsed := resume.Parse(resumeText)
	p.Skills = parsed.Skills
	p.ResumeText = resumeText
	p.UpdatedAt = u.now().UTC()

	updated, err := u.profiles.Update(ctx, p)
	if err != nil {
		return resume.Parsed{}, profile.Profile{}, ErrInternal
	}
	return parsed, sanitizeProfile(updated), nil
}
