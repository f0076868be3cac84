package app

import (
	"context"

	"go.uber.org/zap"

	"internscout/internal/config"
	"internscout/internal/infrastructure/cache"
	"internscout/internal/pkg/jwt"
	"internscout/internal/repository/memory"
	"internscout/internal/seeder"
)

// Container owns the long-lived infrastructure: config, logger, the
// in-memory stores and the optional Redis match cache.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	JWT      jwt.Service
	Profiles *memory.ProfileRepository
	Listings *memory.ListingRepository
	Drafts   *memory.DraftRepository
	Cache    *cache.Redis
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	profiles := memory.NewProfileRepository()
	listings := memory.NewListingRepository()
	drafts := memory.NewDraftRepository()

	seeder.SeedListings(listings)
	if err := seeder.SeedDemoProfile(context.Background(), profiles); err != nil {
		return nil, err
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		JWT:      jwt.NewHMACService(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL),
		Profiles: profiles,
		Listings: listings,
		Drafts:   drafts,
		Cache:    cache.NewRedis(cfg.Redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
