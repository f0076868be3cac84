package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"internscout/internal/domain/profile"
	"internscout/internal/repository/memory"
)

// SeedDemoProfile creates the demo account used in workshops so the matching
// flow can be exercised without signing up first.
func SeedDemoProfile(ctx context.Context, repo *memory.ProfileRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	p := profile.Profile{
		ID:             uuid.New(),
		Email:          "demo@student.edu",
		PasswordHash:   string(hash),
		Name:           "Demo Student",
		College:        "IIT Delhi",
		Degree:         "B.Tech Computer Science",
		GraduationYear: 2025,
		Skills:         []string{"JavaScript", "React", "Python", "Node.js"},
		Preferences: profile.Preferences{
			Roles:     []string{"frontend", "fullstack"},
			Locations: []string{"remote", "bangalore"},
			Types:     []string{"summer"},
		},
		OnboardingComplete: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return repo.Create(ctx, p)
}
