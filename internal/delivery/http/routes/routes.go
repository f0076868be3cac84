package routes

import (
	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/handler"
	v1 "internscout/internal/delivery/http/routes/v1"
)

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Dependencies
}

func NewRegistry(deps v1.Dependencies) *Registry {
	return &Registry{health: handler.NewHealthHandler(), deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
