package config

import (
	"os"
	"strconv"
	"time"

	"github.com/workmate-ai/gateway/pkg/models"
)

// Config holds all configuration for the WorkMate gateway. It is read
// once at startup and passed by reference; business logic never reads
// the environment directly.
type Config struct {
	Port       int
	Version    string
	AgentsFile string

	// Provider is the process-wide backend selection. Every request
	// during the process lifetime uses the same selection.
	Provider models.ProviderKind

	// RequestTimeout bounds every outbound backend call so a hung
	// provider cannot stall the caller indefinitely.
	RequestTimeout time.Duration

	OpenAI    ProviderConfig
	Anthropic ProviderConfig
	Google    ProviderConfig
	Groq      ProviderConfig
	Local     ProviderConfig

	Telemetry TelemetryConfig
}

// ProviderConfig carries the credentials needed to reach one backend.
// A missing APIKey is not a load-time error; adapters detect it at
// call time and the engine falls back.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	provider := models.ProviderKind(envStr("AI_PROVIDER", string(models.ProviderMock)))
	if !provider.Known() {
		provider = models.ProviderMock
	}

	return &Config{
		Port:           envInt("WORKMATE_PORT", 8080),
		Version:        envStr("WORKMATE_VERSION", "0.1.0"),
		AgentsFile:     envStr("WORKMATE_AGENTS_FILE", ""),
		Provider:       provider,
		RequestTimeout: envDuration("AI_REQUEST_TIMEOUT", 15*time.Second),
		OpenAI: ProviderConfig{
			APIKey:  envStr("OPENAI_API_KEY", ""),
			Model:   envStr("OPENAI_MODEL", "gpt-4-turbo-preview"),
			BaseURL: envStr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		Anthropic: ProviderConfig{
			APIKey:  envStr("ANTHROPIC_API_KEY", ""),
			Model:   envStr("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
			BaseURL: envStr("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1"),
		},
		Google: ProviderConfig{
			APIKey:  envStr("GOOGLE_API_KEY", ""),
			Model:   envStr("GOOGLE_MODEL", "gemini-pro"),
			BaseURL: envStr("GOOGLE_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
		Groq: ProviderConfig{
			APIKey:  envStr("GROQ_API_KEY", ""),
			Model:   envStr("GROQ_MODEL", "llama-3.1-70b-versatile"),
			BaseURL: envStr("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		},
		Local: ProviderConfig{
			Model:   envStr("LOCAL_LLM_MODEL", "llama2"),
			BaseURL: envStr("LOCAL_LLM_BASE_URL", "http://localhost:11434"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      envBool("OTEL_ENABLED", false),
			OTLPEndpoint: envStr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  envStr("OTEL_SERVICE_NAME", "workmate-gateway"),
		},
	}
}

// ActiveCredentials returns the ProviderConfig for the active selection.
// The mock selection has no credentials.
func (c *Config) ActiveCredentials() ProviderConfig {
	switch c.Provider {
	case models.ProviderOpenAI:
		return c.OpenAI
	case models.ProviderAnthropic:
		return c.Anthropic
	case models.ProviderGoogle:
		return c.Google
	case models.ProviderGroq:
		return c.Groq
	case models.ProviderLocal:
		return c.Local
	}
	return ProviderConfig{}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
