// internal/common/config/config.go
package config

import (
	"strings"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Registry RegistryConfig `mapstructure:"registry"`
	Output   OutputConfig   `mapstructure:"output"`
	Throttle ThrottleConfig `mapstructure:"throttle"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// RegistryConfig locates the remote component registry.
type RegistryConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	DemoURLTemplate string `mapstructure:"demo_url_template"` // {base} and {name} placeholders
	Timeout         int    `mapstructure:"timeout"`           // milliseconds
	UserAgent       string `mapstructure:"user_agent"`
}

// DemoTemplate returns the per-component URL template with {base} resolved.
func (r RegistryConfig) DemoTemplate() string {
	return strings.ReplaceAll(r.DemoURLTemplate, "{base}", strings.TrimSuffix(r.BaseURL, "/"))
}

// OutputConfig describes the generated reference document.
type OutputConfig struct {
	Path             string `mapstructure:"path"`
	Title            string `mapstructure:"title"`
	Intro            string `mapstructure:"intro"`
	FallbackLanguage string `mapstructure:"fallback_language"`
}

type ThrottleConfig struct {
	Delay int `mapstructure:"delay"` // milliseconds
}

// CacheConfig configures the optional Redis payload cache.
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
