package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"internscout/internal/delivery/http/middleware"
)

// userIDFromCtx reads the authenticated user id placed by the auth
// middleware. A miss means the route was wired without it.
func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
