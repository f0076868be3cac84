package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"internscout/internal/domain/profile"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type ProfileRepository interface {
	Create(ctx context.Context, p profile.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	GetByEmail(ctx context.Context, email string) (profile.Profile, error)
	Update(ctx context.Context, p profile.Profile) (profile.Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
