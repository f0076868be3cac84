package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"internscout/internal/pkg/jwt"
	"internscout/internal/repository/memory"
)

func newTestAuth() (*Auth, *memory.ProfileRepository) {
	repo := memory.NewProfileRepository()
	svc := jwt.NewHMACService("test-secret", time.Hour)
	return NewAuthUsecase(repo, svc), repo
}

func validSignup() SignupInput {
	return SignupInput{
		Email:          "alice@student.edu",
		Password:       "secret1",
		Name:           "Alice",
		College:        "IIT Bombay",
		Degree:         "B.Tech",
		GraduationYear: 2026,
	}
}

func TestAuth_SignupAndLogin(t *testing.T) {
	uc, _ := newTestAuth()

	p, token, err := uc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if p.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}

	got, token, err := uc.Login(context.Background(), LoginInput{Email: "ALICE@student.edu", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("expected profile %s, got %s", p.ID, got.ID)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
}

func TestAuth_SignupDuplicateEmail(t *testing.T) {
	uc, _ := newTestAuth()

	if _, _, err := uc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, _, err := uc.Signup(context.Background(), validSignup())
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_SignupValidation(t *testing.T) {
	uc, _ := newTestAuth()

	in := validSignup()
	in.Email = "   "
	if _, _, err := uc.Signup(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank email: expected ErrInvalidInput, got %v", err)
	}

	in = validSignup()
	in.Password = "short"
	if _, _, err := uc.Signup(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	uc, _ := newTestAuth()

	if _, _, err := uc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, _, err := uc.Login(context.Background(), LoginInput{Email: "alice@student.edu", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	uc, _ := newTestAuth()
	_, _, err := uc.Login(context.Background(), LoginInput{Email: "nobody@student.edu", Password: "secret1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Session(t *testing.T) {
	uc, _ := newTestAuth()

	p, _, err := uc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	got, err := uc.Session(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got.Email != "alice@student.edu" {
		t.Fatalf("unexpected email %q", got.Email)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked in session response")
	}
}
