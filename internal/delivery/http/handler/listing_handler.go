package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/dto"
	"internscout/internal/delivery/http/middleware"
	"internscout/internal/pkg/response"
	"internscout/internal/usecase"
)

type ListingHandler struct {
	listings usecase.ListingUsecase
	matching usecase.MatchingUsecase
}

func NewListingHandler(listings usecase.ListingUsecase, matching usecase.MatchingUsecase) *ListingHandler {
	return &ListingHandler{listings: listings, matching: matching}
}

func (h *ListingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/internships", h.List)
	r.Get("/internships/:id", h.Get)
}

func (h *ListingHandler) List(c fiber.Ctx) error {
	items, err := h.listings.List(c.Context())
	if err != nil {
		return mapListingUsecaseError(err)
	}

	data := map[string]any{
		"internships": items,
		"total":       len(items),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// Get returns a single listing. When the caller is authenticated the
// payload also carries the match score and reasons against their profile.
func (h *ListingHandler) Get(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Internship id is required", nil, nil)
	}

	item, err := h.listings.Get(c.Context(), id)
	if err != nil {
		return mapListingUsecaseError(err)
	}

	data := map[string]any{"internship": item}

	if userID, ok := userIDFromCtx(c); ok {
		if detail, err := h.matching.MatchDetails(c.Context(), userID, id); err == nil {
			data["match"] = dto.MatchResponse{
				Internship:   detail.Listing,
				Score:        detail.Score,
				MatchReasons: detail.Reasons,
			}
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func mapListingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Internship not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
