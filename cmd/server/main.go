package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"internscout/internal/app"
	"internscout/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("internscout: load config: %v", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("internscout: bootstrap: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("internscout: cleanup: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("internscout: invalid HTTP port: %v", err)
	}

	log.Printf("internscout: listening on %s (%s)", addr, cfg.App.Environment)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("internscout: server: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("internscout: %s received, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("internscout: shutdown: %v", err)
		}
	}
}
