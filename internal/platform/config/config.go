package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration

	MediaDir string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "vershyna"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	algorithm := strings.TrimSpace(os.Getenv("JWT_ALGORITHM"))
	if algorithm == "" {
		algorithm = "HS256"
	}

	mediaDir := strings.TrimSpace(os.Getenv("MEDIA_DIR"))
	if mediaDir == "" {
		mediaDir = "media"
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: algorithm,
		TokenTTL:     time.Duration(envInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		MediaDir:     mediaDir,
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
