package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Auth  AuthConfig
	Redis RedisConfig
	Log   LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "internscout")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("SESSION_TTL_MINUTES", 720)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL_SECONDS", 600)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	cfg := Config{
		App: AppConfig{
			AppName:     v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			HTTPPort:    v.GetString("HTTP_PORT"),
		},
		Auth: AuthConfig{
			SessionSecret: v.GetString("SESSION_SECRET"),
			SessionTTL:    time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			TTL:      time.Duration(v.GetInt("REDIS_TTL_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	var missing []string
	if strings.TrimSpace(cfg.Auth.SessionSecret) == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
