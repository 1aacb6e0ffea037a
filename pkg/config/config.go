package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backend mode selects which repository adapters the composition root wires
const (
	BackendModeMock   = "mock"
	BackendModeRemote = "remote"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// BackendConfig holds data source configuration
type BackendConfig struct {
	// Mode is "mock" (in-process seed data behind a fixed latency) or
	// "remote" (HTTP client against RemoteBaseURL)
	Mode string

	// MockLatency is the simulated network delay of the mock adapters
	MockLatency time.Duration

	// RecordingDelay is the simulated dictation recording duration
	RecordingDelay time.Duration

	// RemoteBaseURL is the base URL of the real backend, remote mode only
	RemoteBaseURL string

	// RemoteTimeout bounds each remote HTTP request
	RemoteTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Env string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Backend: BackendConfig{
			Mode:           getEnv("BACKEND_MODE", BackendModeMock),
			MockLatency:    getEnvAsDuration("MOCK_LATENCY", time.Second),
			RecordingDelay: getEnvAsDuration("RECORDING_DELAY", 3*time.Second),
			RemoteBaseURL:  getEnv("REMOTE_BASE_URL", ""),
			RemoteTimeout:  getEnvAsDuration("REMOTE_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Env: getEnv("APP_ENV", "development"),
		},
	}

	if cfg.Backend.Mode != BackendModeMock && cfg.Backend.Mode != BackendModeRemote {
		return nil, fmt.Errorf("invalid BACKEND_MODE %q: must be %q or %q", cfg.Backend.Mode, BackendModeMock, BackendModeRemote)
	}
	if cfg.Backend.Mode == BackendModeRemote && cfg.Backend.RemoteBaseURL == "" {
		return nil, fmt.Errorf("REMOTE_BASE_URL is required when BACKEND_MODE=%s", BackendModeRemote)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
