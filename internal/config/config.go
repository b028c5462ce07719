// Package config provides environment-based configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the service configuration, loaded once at startup. Required
// values missing from the environment fail the load; the process should not
// come up half-configured.
type Config struct {
	Port        int
	DatabaseURL string

	// GatewayAPIKey authenticates against the AI gateway. Required unless
	// LLM_PROVIDER selects a direct provider with its own key.
	GatewayAPIKey string

	// RedisURL enables event publishing when set. Empty disables it.
	RedisURL string

	// SweepSchedule is the cron expression for the deadline sweep.
	SweepSchedule string

	JWT      *JWTConfig
	Password *PasswordConfig
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	gatewayKey := os.Getenv("AI_GATEWAY_API_KEY")
	if gatewayKey == "" {
		return nil, fmt.Errorf("AI_GATEWAY_API_KEY is required but not set")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil || parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("invalid PORT: %q", portStr)
		}
		port = parsed
	}

	schedule := os.Getenv("SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "0 * * * *" // hourly
	}

	jwtConfig, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}

	passwordConfig, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		DatabaseURL:   databaseURL,
		GatewayAPIKey: gatewayKey,
		RedisURL:      os.Getenv("REDIS_URL"),
		SweepSchedule: schedule,
		JWT:           jwtConfig,
		Password:      passwordConfig,
	}, nil
}
