// Package config provides application configuration management with support
// for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	API    APIConfig
	Upload UploadConfig
	Places PlacesConfig
	Data   DataConfig
	Search SearchConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// APIConfig holds backend API configuration.
type APIConfig struct {
	BaseURL string        // e.g. https://api.example.com
	Timeout time.Duration // per-request timeout (default: 30s)
}

// UploadConfig holds image CDN upload configuration.
type UploadConfig struct {
	URL string // multipart upload endpoint returning {secure_url}
}

// PlacesConfig holds places-autocomplete configuration.
type PlacesConfig struct {
	BaseURL string
	APIKey  string
}

// DataConfig holds device-local storage configuration.
type DataConfig struct {
	// Dir is the key-value store directory for the persisted session.
	Dir string
}

// SearchConfig holds search input behavior configuration.
type SearchConfig struct {
	// Debounce is the quiescence window before a typed query is sent.
	Debounce time.Duration
}

// Load builds configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	apiURL := flag.String("api-url", "", "Backend API base URL")
	apiTimeout := flag.String("api-timeout", "", "Per-request timeout (default: 30s)")
	uploadURL := flag.String("upload-url", "", "Image CDN upload endpoint")
	placesURL := flag.String("places-url", "", "Places autocomplete base URL")
	dataDir := flag.String("data-dir", "", "Directory for device-local storage")
	searchDebounce := flag.String("search-debounce", "", "Search input quiescence window (default: 500ms)")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: value(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: value(*logLevel, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: value(*apiURL, "API_URL", ""),
		},
		Upload: UploadConfig{
			URL: value(*uploadURL, "UPLOAD_URL", ""),
		},
		Places: PlacesConfig{
			BaseURL: value(*placesURL, "PLACES_URL", "https://maps.googleapis.com/maps/api/place"),
			APIKey:  value("", "PLACES_API_KEY", ""),
		},
		Data: DataConfig{
			Dir: value(*dataDir, "DATA_DIR", ""),
		},
	}

	timeoutStr := value(*apiTimeout, "API_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid api timeout %q: %w", timeoutStr, err)
	}
	cfg.API.Timeout = timeout

	debounceStr := value(*searchDebounce, "SEARCH_DEBOUNCE", "500ms")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid search debounce %q: %w", debounceStr, err)
	}
	cfg.Search.Debounce = debounce

	if err := cfg.expandDataDir(); err != nil {
		return nil, fmt.Errorf("invalid data dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.API.BaseURL == "" {
		return errors.New("API_URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API_URL must be an http(s) URL, got %q", c.API.BaseURL)
	}

	if c.Search.Debounce <= 0 {
		return errors.New("search debounce must be positive")
	}

	if c.Data.Dir == "" {
		return errors.New("data dir cannot be empty after expansion")
	}

	return nil
}

// expandDataDir expands ~ and makes the path absolute, defaulting to
// ~/.mochila under the user's home directory.
func (c *Config) expandDataDir() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultDir := filepath.Join(homeDir, ".mochila")

	path := c.Data.Dir
	if path == "" {
		c.Data.Dir = defaultDir
		return nil
	}

	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, path[2:])
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = abs
	}

	c.Data.Dir = filepath.Clean(path)
	return nil
}

// value returns the first non-empty value from flag, env var, or default.
func value(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		val := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		// Env vars take precedence over the .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, val); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
