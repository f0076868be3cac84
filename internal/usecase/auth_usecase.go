package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"internscout/internal/domain/profile"
	"internscout/internal/pkg/jwt"
	"internscout/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

type SignupInput struct {
	Email          string
	Password       string
	Name           string
	College        string
	Degree         string
	GraduationYear int
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) (profile.Profile, string, error)
	Login(ctx context.Context, in LoginInput) (profile.Profile, string, error)
	Session(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

type Auth struct {
	profiles repository.ProfileRepository
	jwt      jwt.Service

	now func() time.Time
}

func NewAuthUsecase(profiles repository.ProfileRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{profiles: profiles, jwt: jwtSvc, now: time.Now}
}

func (u *Auth) Signup(ctx context.Context, in SignupInput) (profile.Profile, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return profile.Profile{}, "", ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < 6 {
		return profile.Profile{}, "", ErrInvalidInput
	}

	exists, err := u.profiles.ExistsByEmail(ctx, email)
	if err != nil {
		return profile.Profile{}, "", ErrInternal
	}
	if exists {
		return profile.Profile{}, "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return profile.Profile{}, "", ErrInternal
	}

	now := u.now().UTC()
	p := profile.Profile{
		ID:             uuid.New(),
		Email:          email,
		PasswordHash:   string(hash),
		Name:           strings.TrimSpace(in.Name),
		College:        strings.TrimSpace(in.College),
		Degree:         strings.TrimSpace(in.Degree),
		GraduationYear: in.GraduationYear,
		Skills:         []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return profile.Profile{}, "", ErrEmailAlreadyRegistered
		}
		return profile.Profile{}, "", ErrInternal
	}

	token, err := u.jwt.GenerateSessionToken(p.ID, p.Email)
	if err != nil {
		return profile.Profile{}, "", ErrInternal
	}

	return sanitizeProfile(p), token, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (profile.Profile, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return profile.Profile{}, "", ErrInvalidCredentials
	}

	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, "", ErrInvalidCredentials
		}
		return profile.Profile{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.Password)); err != nil {
		return profile.Profile{}, "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateSessionToken(p.ID, p.Email)
	if err != nil {
		return profile.Profile{}, "", ErrInternal
	}

	return sanitizeProfile(p), token, nil
}

func (u *Auth) Session(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrUnauthorized
		}
		return profile.Profile{}, ErrInternal
	}
	return sanitizeProfile(p), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeProfile(p profile.Profile) profile.Profile {
	p.PasswordHash = ""
	return p
}
