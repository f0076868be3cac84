package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/dto"
	"internscout/internal/delivery/http/middleware"
	"internscout/internal/pkg/response"
	"internscout/internal/usecase"
)

type ResumeHandler struct {
	uc usecase.ProfileUsecase
}

type resumeParseRequest struct {
	ResumeText string `json:"resume_text"`
}

func NewResumeHandler(uc usecase.ProfileUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resume/parse", h.Parse)
}

func (h *ResumeHandler) Parse(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req resumeParseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume text is required", nil, nil)
	}

	parsed, p, err := h.uc.ParseResume(c.Context(), userID, req.ResumeText)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	data := map[string]any{
		"parsed": dto.ResumeParseResponse{
			Skills:     parsed.Skills,
			SkillCount: len(parsed.Skills),
			WordCount:  parsed.WordCount,
		},
		"user": p,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
