package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	TransportREST = "rest"
	TransportSDK  = "sdk"

	DefaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultGeminiAPIVersion = "v1beta"
	DefaultGeminiModel      = "gemini-2.0-flash"
)

type GeminiConfig struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	BaseURL    string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	APIVersion string `env:"GEMINI_API_VERSION" envDefault:"v1beta"`
	Model      string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Transport  string `env:"GEMINI_TRANSPORT" envDefault:"rest"`
}

type AppConfig struct {
	Gemini       GeminiConfig
	StrictSchema bool   `env:"QUIZ_STRICT_SCHEMA" envDefault:"false"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Port         string `env:"PORT" envDefault:"8080"`
	// Comma separated; empty leaves CORS off.
	CorsAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN"`
}

// Load reads the configuration from the process environment. A missing
// GEMINI_API_KEY is not an error here: the handler answers it per request.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Gemini.Transport = strings.ToLower(strings.TrimSpace(cfg.Gemini.Transport))
	switch cfg.Gemini.Transport {
	case TransportREST, TransportSDK:
	default:
		return nil, fmt.Errorf("invalid GEMINI_TRANSPORT %q", cfg.Gemini.Transport)
	}

	return cfg, nil
}
