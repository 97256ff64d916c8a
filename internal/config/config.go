package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	API    APIConfig
	Viewer ViewerConfig
	Output OutputConfig
}

// APIConfig holds settings for reaching the disclaimer checker service.
type APIConfig struct {
	BaseURL             string `mapstructure:"base_url"`
	TimeoutSecs         int    `mapstructure:"timeout_secs"`
	MaxFileSizeMB       int64  `mapstructure:"max_file_size_mb"`
	DefaultJurisdiction string `mapstructure:"default_jurisdiction"`
}

// Timeout returns the per-request timeout as a duration.
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// ViewerConfig holds settings for the local results viewer.
type ViewerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	OpenBrowser bool   `mapstructure:"open_browser"`
}

// Addr returns the listen address. Port 0 asks the OS for a free port.
func (v *ViewerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", v.Host, v.Port)
}

// OutputConfig holds settings for files the CLI writes.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from environment variables with the DISCHECK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DISCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// API defaults
	v.SetDefault("api.base_url", "https://disclaimer-checker.onrender.com")
	v.SetDefault("api.timeout_secs", 120)
	v.SetDefault("api.max_file_size_mb", 50)
	v.SetDefault("api.default_jurisdiction", "")

	// Viewer defaults
	v.SetDefault("viewer.host", "127.0.0.1")
	v.SetDefault("viewer.port", 0)
	v.SetDefault("viewer.open_browser", true)

	// Output defaults
	v.SetDefault("output.dir", ".")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"api.base_url":             "DISCHECK_API_BASE_URL",
		"api.timeout_secs":         "DISCHECK_API_TIMEOUT_SECS",
		"api.max_file_size_mb":     "DISCHECK_API_MAX_FILE_SIZE_MB",
		"api.default_jurisdiction": "DISCHECK_DEFAULT_JURISDICTION",
		"viewer.host":              "DISCHECK_VIEWER_HOST",
		"viewer.port":              "DISCHECK_VIEWER_PORT",
		"viewer.open_browser":      "DISCHECK_VIEWER_OPEN_BROWSER",
		"output.dir":               "DISCHECK_OUTPUT_DIR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// The service's own deployments configure the bare API_BASE_URL variable.
	// Honor it when the prefixed form is not explicitly set.
	baseURL := v.GetString("api.base_url")
	if bare := os.Getenv("API_BASE_URL"); bare != "" && os.Getenv("DISCHECK_API_BASE_URL") == "" {
		baseURL = bare
	}

	cfg.API = APIConfig{
		BaseURL:             strings.TrimRight(baseURL, "/"),
		TimeoutSecs:         v.GetInt("api.timeout_secs"),
		MaxFileSizeMB:       v.GetInt64("api.max_file_size_mb"),
		DefaultJurisdiction: v.GetString("api.default_jurisdiction"),
	}
	cfg.Viewer = ViewerConfig{
		Host:        v.GetString("viewer.host"),
		Port:        v.GetInt("viewer.port"),
		OpenBrowser: v.GetBool("viewer.open_browser"),
	}
	cfg.Output = OutputConfig{
		Dir: v.GetString("output.dir"),
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base URL must not be empty")
	}

	return cfg, nil
}
