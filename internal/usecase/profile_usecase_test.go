package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"internscout/internal/domain/profile"
)

func TestProfiles_UpdatePartialFields(t *testing.T) {
	profiles, _, userID := seedMatchingFixtures(t)
	uc := NewProfileUsecase(profiles)

	name := "  Renamed Student  "
	year := 2026
	p, err := uc.Update(context.Background(), userID, ProfileUpdateInput{
		Name:           &name,
		GraduationYear: &year,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Name != "Renamed Student" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.GraduationYear != 2026 {
		t.Fatalf("expected graduation year 2026, got %d", p.GraduationYear)
	}
	// Untouched fields survive a partial update.
	if p.College != "IIT Delhi" {
		t.Fatalf("college changed unexpectedly: %q", p.College)
	}
	if len(p.Skills) == 0 {
		t.Fatalf("skills cleared unexpectedly")
	}
}

func TestProfiles_UpdatePreferences(t *testing.T) {
	profiles, _, userID := seedMatchingFixtures(t)
	uc := NewProfileUsecase(profiles)

	prefs := profile.Preferences{
		Roles:     []string{"backend"},
		Locations: []string{"pune"},
		Types:     []string{"winter"},
	}
	p, err := uc.Update(context.Background(), userID, ProfileUpdateInput{Preferences: &prefs})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(p.Preferences.Roles) != 1 || p.Preferences.Roles[0] != "backend" {
		t.Fatalf("preferences not replaced: %v", p.Preferences)
	}
}

func TestProfiles_UpdateUnknownProfile(t *testing.T) {
	profiles, _, _ := seedMatchingFixtures(t)
	uc := NewProfileUsecase(profiles)

	name := "x"
	_, err := uc.Update(context.Background(), uuid.New(), ProfileUpdateInput{Name: &name})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfiles_ParseResume(t *testing.T) {
	profiles, _, userID := seedMatchingFixtures(t)
	uc := NewProfileUsecase(profiles)

	parsed, p, err := uc.ParseResume(context.Background(), userID, "Built APIs with Go and PostgreSQL, deployed on Docker.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed.Skills) == 0 {
		t.Fatalf("expected detected skills")
	}
	// Parsing replaces the stored skill list wholesale.
	if len(p.Skills) != len(parsed.Skills) {
		t.Fatalf("profile skills %v do not mirror parsed %v", p.Skills, parsed.Skills)
	}
	for i := range parsed.Skills {
		if p.Skills[i] != parsed.Skills[i] {
			t.Fatalf("profile skills %v do not mirror parsed %v", p.Skills, parsed.Skills)
		}
	}

	_, _, err = uc.ParseResume(context.Background(), userID, "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank text, got %v", err)
	}
}
