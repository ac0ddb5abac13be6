package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvOutputDir   = "ANNOTATOR_OUTPUT_DIR"
	EnvJPEGQuality = "ANNOTATOR_JPEG_QUALITY"
	EnvLogLevel    = "ANNOTATOR_LOG_LEVEL"

	// DefaultJPEGQuality matches OpenCV's imencode default.
	DefaultJPEGQuality = 95
	DefaultLogLevel    = "info"
)

type Config struct {
	OutputDir   string
	JPEGQuality int
	LogLevel    string

	dotEnvErr error
}

// Load reads configuration from the environment after applying envFile
// (or ./.env when envFile is empty). A missing .env file is not an error;
// an unreadable or malformed ./.env is kept for DotEnvError.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var dotEnvErr error
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotEnvErr = err
		}
	}

	cfg := &Config{
		OutputDir:   getEnvOrDefault(EnvOutputDir, DefaultOutputDir()),
		JPEGQuality: DefaultJPEGQuality,
		LogLevel:    getEnvOrDefault(EnvLogLevel, DefaultLogLevel),
		dotEnvErr:   dotEnvErr,
	}

	if v := strings.TrimSpace(os.Getenv(EnvJPEGQuality)); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", EnvJPEGQuality, v)
		}
		cfg.JPEGQuality = q
	}

	return cfg, nil
}

// DotEnvError reports why an existing ./.env could not be applied. Load does
// not fail on it.
func (c *Config) DotEnvError() error {
	return c.dotEnvErr
}

// Validate checks the values a run depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100 (got %d)", c.JPEGQuality)
	}
	return nil
}

// DefaultOutputDir is upload/data two levels above the executable's directory.
func DefaultOutputDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("..", "..", "upload", "data")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Clean(filepath.Join(filepath.Dir(exe), "..", "..", "upload", "data"))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
