package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		API:    APIConfig{BaseURL: "https://api.example.com", Timeout: 30 * time.Second},
		Data:   DataConfig{Dir: "/tmp/mochila"},
		Search: SearchConfig{Debounce: 500 * time.Millisecond},
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad environment", func(c *Config) { c.App.Environment = "prod" }, "invalid environment"},
		{"bad log level", func(c *Config) { c.Logger.Level = "verbose" }, "invalid log level"},
		{"missing api url", func(c *Config) { c.API.BaseURL = "" }, "API_URL is required"},
		{"non-http api url", func(c *Config) { c.API.BaseURL = "ftp://api" }, "http(s)"},
		{"zero debounce", func(c *Config) { c.Search.Debounce = 0 }, "debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := validConfig()
	cfg.Data.Dir = ""
	require.NoError(t, cfg.expandDataDir())
	assert.Equal(t, filepath.Join(home, ".mochila"), cfg.Data.Dir)

	cfg.Data.Dir = "~/journals"
	require.NoError(t, cfg.expandDataDir())
	assert.Equal(t, filepath.Join(home, "journals"), cfg.Data.Dir)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# backend\nAPI_URL=https://api.example.com\nUPLOAD_URL=\"https://cdn.example.com/image/upload\"\n"), 0o600))

	t.Setenv("API_URL", "")
	t.Setenv("UPLOAD_URL", "")
	os.Unsetenv("API_URL")
	os.Unsetenv("UPLOAD_URL")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "https://api.example.com", os.Getenv("API_URL"))
	assert.Equal(t, "https://cdn.example.com/image/upload", os.Getenv("UPLOAD_URL"))
}

func TestLoadEnvFile_RejectsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JUST_A_KEY\n"), 0o600))
	assert.Error(t, loadEnvFile(path))
}

func TestValue_Precedence(t *testing.T) {
	t.Setenv("MOCHILA_TEST_KEY", "from-env")
	assert.Equal(t, "from-flag", value("from-flag", "MOCHILA_TEST_KEY", "fallback"))
	assert.Equal(t, "from-env", value("", "MOCHILA_TEST_KEY", "fallback"))
	os.Unsetenv("MOCHILA_TEST_KEY")
	assert.Equal(t, "fallback", value("", "MOCHILA_TEST_KEY", "fallback"))
}
