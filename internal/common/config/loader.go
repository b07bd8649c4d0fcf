// internal/common/config/loader.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultRegistryURL      = "https://ui.aceternity.com/registry"
	DefaultDemoURLTemplate  = "{base}/{name}-demo.json"
	DefaultOutputPath       = "aceternity_ui_library.md"
	DefaultTitle            = "Aceternity UI Component Library Reference"
	DefaultIntro            = "This document contains the full source code and dependency information for all components in the Aceternity UI library. Use this as a reference to understand how to implement or modify them."
	DefaultFallbackLanguage = "tsx"
)

// Load reads .env, config.yaml, config.<env>.yaml and the environment.
// None of the files are required.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// registry.base_url <-> REGISTRY_BASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // ignore error if not found

	return decode(v, env)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v, os.Getenv("APP_ENVIRONMENT"))
}

func decode(v *viper.Viper, env string) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = env
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// setDefaults registers every key so AutomaticEnv can override keys that
// appear in no config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ui-registry-scraper")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "")

	v.SetDefault("registry.base_url", DefaultRegistryURL)
	v.SetDefault("registry.demo_url_template", DefaultDemoURLTemplate)
	v.SetDefault("registry.timeout", 30000)
	v.SetDefault("registry.user_agent", "ui-registry-scraper/1.0")

	v.SetDefault("output.path", DefaultOutputPath)
	v.SetDefault("output.title", DefaultTitle)
	v.SetDefault("output.intro", DefaultIntro)
	v.SetDefault("output.fallback_language", DefaultFallbackLanguage)

	v.SetDefault("throttle.delay", 100)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.address", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 86400000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("metrics.textfile", "")
}

// applyDefaults fills values a config file explicitly blanked out.
func applyDefaults(cfg *Config) {
	if cfg.Registry.BaseURL == "" {
		cfg.Registry.BaseURL = DefaultRegistryURL
	}
	if cfg.Registry.DemoURLTemplate == "" {
		cfg.Registry.DemoURLTemplate = DefaultDemoURLTemplate
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutputPath
	}
	if cfg.Output.Title == "" {
		cfg.Output.Title = DefaultTitle
	}
	if cfg.Output.FallbackLanguage == "" {
		cfg.Output.FallbackLanguage = DefaultFallbackLanguage
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// Validate validates critical configuration fields
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.Registry.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("registry.base_url must be an absolute http(s) URL, got %q", cfg.Registry.BaseURL)
	}
	if !strings.Contains(cfg.Registry.DemoURLTemplate, "{name}") {
		return fmt.Errorf("registry.demo_url_template must contain {name}")
	}
	if cfg.Registry.Timeout < 0 {
		return fmt.Errorf("registry.timeout must not be negative")
	}
	if cfg.Throttle.Delay < 0 {
		return fmt.Errorf("throttle.delay must not be negative")
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache.enabled is set")
	}
	return nil
}
