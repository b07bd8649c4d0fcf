package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, "app:\n  name: scraper\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultRegistryURL, cfg.Registry.BaseURL)
	assert.Equal(t, "https://ui.aceternity.com/registry/{name}-demo.json", cfg.Registry.DemoTemplate())
	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
	assert.Equal(t, DefaultTitle, cfg.Output.Title)
	assert.Equal(t, DefaultIntro, cfg.Output.Intro)
	assert.Equal(t, "tsx", cfg.Output.FallbackLanguage)
	assert.Equal(t, 100*time.Millisecond, GetDuration(cfg.Throttle.Delay))
	assert.Equal(t, 30*time.Second, GetDuration(cfg.Registry.Timeout))
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestLoadFromFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
registry:
  base_url: http://localhost:9999/r/
  timeout: 500
output:
  path: out.md
  fallback_language: text
throttle:
  delay: 0
cache:
  enabled: true
  address: localhost:6380
  ttl: 1000
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/r/{name}-demo.json", cfg.Registry.DemoTemplate())
	assert.Equal(t, "out.md", cfg.Output.Path)
	assert.Equal(t, "text", cfg.Output.FallbackLanguage)
	assert.Equal(t, 0, cfg.Throttle.Delay)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6380", cfg.Cache.Address)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "from-env.md")
	t.Setenv("REGISTRY_BASE_URL", "http://env.example/registry")

	cfg, err := LoadFromFile(writeConfig(t, "app:\n  name: scraper\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env.md", cfg.Output.Path)
	assert.Equal(t, "http://env.example/registry", cfg.Registry.BaseURL)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv("SCRAPER_TEST_REDIS_PASSWORD", "s3cret")

	cfg, err := LoadFromFile(writeConfig(t, "cache:\n  password: ${SCRAPER_TEST_REDIS_PASSWORD}\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Cache.Password)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Registry: RegistryConfig{BaseURL: DefaultRegistryURL, DemoURLTemplate: DefaultDemoURLTemplate},
			Output:   OutputConfig{Path: "x.md", FallbackLanguage: "tsx"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"relative base url", func(c *Config) { c.Registry.BaseURL = "/registry" }, "registry.base_url"},
		{"ftp base url", func(c *Config) { c.Registry.BaseURL = "ftp://host/registry" }, "registry.base_url"},
		{"template without name", func(c *Config) { c.Registry.DemoURLTemplate = "{base}/demo.json" }, "{name}"},
		{"negative delay", func(c *Config) { c.Throttle.Delay = -1 }, "throttle.delay"},
		{"negative timeout", func(c *Config) { c.Registry.Timeout = -1 }, "registry.timeout"},
		{"cache without address", func(c *Config) { c.Cache.Enabled = true }, "cache.address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
