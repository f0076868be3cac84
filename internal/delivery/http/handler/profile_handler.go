package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/middleware"
	"internscout/internal/domain/profile"
	"internscout/internal/pkg/response"
	"internscout/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileUpdateRequest struct {
	Name               *string              `json:"name"`
	College            *string              `json:"college"`
	Degree             *string              `json:"degree"`
	GraduationYear     *int                 `json:"graduation_year"`
	Skills             *[]string            `json:"skills"`
	Preferences        *profile.Preferences `json:"preferences"`
	OnboardingComplete *bool                `json:"onboarding_complete"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/profile", h.Get)
	r.Patch("/profile", h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"user": p})
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req profileUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), userID, usecase.ProfileUpdateInput{
		Name:               req.Name,
		College:            req.College,
		Degree:             req.Degree,
		GraduationYear:     req.GraduationYear,
		Skills:             req.Skills,
		Preferences:        req.Preferences,
		OnboardingComplete: req.OnboardingComplete,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"user": p})
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
