package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"internscout/internal/delivery/http/dto"
	"internscout/internal/delivery/http/middleware"
	"internscout/internal/domain/outreach"
	"internscout/internal/pkg/response"
	"internscout/internal/usecase"
)

type OutreachHandler struct {
	uc usecase.OutreachUsecase
}

type outreachGenerateRequest struct {
	InternshipID string `json:"internship_id"`
}

type outreachStatusRequest struct {
	Status string `json:"status"`
}

func NewOutreachHandler(uc usecase.OutreachUsecase) *OutreachHandler {
	return &OutreachHandler{uc: uc}
}

func (h *OutreachHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/outreach", h.Generate)
	r.Get("/outreach", h.List)
	r.Patch("/outreach/:id/status", h.UpdateStatus)
}

func (h *OutreachHandler) Generate(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req outreachGenerateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.InternshipID) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Internship id is required", nil, nil)
	}

	draft, res, err := h.uc.Generate(c.Context(), userID, req.InternshipID)
	if err != nil {
		if errors.Is(err, usecase.ErrComplianceFailed) {
			data := map[string]any{
				"compliance_issues": dto.NewComplianceIssueResponses(res.Issues),
			}
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Draft failed compliance checks", data, err)
		}
		return mapOutreachUsecaseError(err)
	}

	data := map[string]any{
		"draft":             dto.NewDraftResponse(draft),
		"compliance_issues": dto.NewComplianceIssueResponses(res.Issues),
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *OutreachHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	drafts, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapOutreachUsecaseError(err)
	}

	items := make([]dto.DraftResponse, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, dto.NewDraftResponse(d))
	}
	data := map[string]any{
		"drafts": items,
		"total":  len(items),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *OutreachHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid draft id", nil, err)
	}

	var req outreachStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	d, err := h.uc.UpdateStatus(c.Context(), userID, draftID, outreach.Status(strings.ToLower(strings.TrimSpace(req.Status))))
	if err != nil {
		return mapOutreachUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"draft": dto.NewDraftResponse(d)})
}

func mapOutreachUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, outreach.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Draft not found", nil, err)
	case errors.Is(err, usecase.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Internship not found", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
