package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/middleware"
	"internscout/internal/pkg/response"
	"internscout/internal/usecase"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type signupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	College        string `json:"college"`
	Degree         string `json:"degree"`
	GraduationYear int    `json:"graduation_year"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/session", h.Session)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, token, err := h.uc.Signup(c.Context(), usecase.SignupInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		College:        req.College,
		Degree:         req.Degree,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"user":          p,
		"session_token": token,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, token, err := h.uc.Login(c.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"user":          p,
		"session_token": token,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Session(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.Session(c.Context(), userID)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"user": p})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
