package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"internscout/internal/config"
	"internscout/internal/delivery/http/middleware"
	"internscout/internal/delivery/http/routes"
	v1 "internscout/internal/delivery/http/routes/v1"
	"internscout/internal/pkg/logger"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	cleanup := func() error {
		err := c.Close()
		_ = log.Sync()
		return err
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := routes.NewRegistry(v1.Dependencies{
		JWT:      c.JWT,
		Profiles: c.Profiles,
		Listings: c.Listings,
		Drafts:   c.Drafts,
		Cache:    c.Cache,
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
