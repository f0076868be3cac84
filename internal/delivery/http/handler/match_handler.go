package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/dto"
	"internscout/internal/delivery/http/middleware"
	"internscout/internal/domain/matching"
	"internscout/internal/pkg/response"
	"internscout/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

type matchRequest struct {
	Limit int `json:"limit"`
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req matchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	results, err := h.uc.RankMatches(c.Context(), userID, req.Limit)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchListResponse(results))
}

func toMatchListResponse(results []matching.MatchResult) dto.MatchListResponse {
	matches := make([]dto.MatchResponse, 0, len(results))
	for _, r := range results {
		matches = append(matches, dto.MatchResponse{
			Internship:   r.Listing,
			Score:        r.Score,
			MatchReasons: r.Reasons,
		})
	}
	return dto.MatchListResponse{Matches: matches, TotalMatches: len(matches)}
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileSkillsEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, "Add skills to your profile before matching", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Internship not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
