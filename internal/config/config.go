package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/parks-dashboard/internal/dataset"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	DataFile        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	ReportCacheSize int
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file next to the working directory is honored when
// present (best effort).
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseReportCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DataFile:        envOrDefault("DATA_FILE", defaultDataFile()),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		ReportCacheSize: cacheSize,
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.DataFile == "" {
		return nil, errors.New("DATA_FILE is required")
	}

	return cfg, nil
}

// defaultDataFile resolves the survey CSV next to the running executable,
// falling back to the working directory when the executable path is unknown.
func defaultDataFile() string {
	exe, err := os.Executable()
	if err != nil {
		return dataset.DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), dataset.DefaultFileName)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func parseReportCacheSize() (int, error) {
	s := os.Getenv("REPORT_CACHE_SIZE")
	if s == "" {
		return 256, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid REPORT_CACHE_SIZE")
	}
	return n, nil
}
