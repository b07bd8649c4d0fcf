// internal/scraper/runner/config.go
package runner

import (
	"time"

	"ui-registry-scraper/internal/common/config"
)

// Config carries every value the pipeline needs; nothing is read from
// package-level state.
type Config struct {
	RegistryURL      string
	DemoURLTemplate  string
	OutputPath       string
	Title            string
	Intro            string
	FallbackLanguage string
	Delay            time.Duration
}

// FromAppConfig maps the loaded application config onto a runner Config.
func FromAppConfig(cfg *config.Config) *Config {
	return &Config{
		RegistryURL:      cfg.Registry.BaseURL,
		DemoURLTemplate:  cfg.Registry.DemoTemplate(),
		OutputPath:       cfg.Output.Path,
		Title:            cfg.Output.Title,
		Intro:            cfg.Output.Intro,
		FallbackLanguage: cfg.Output.FallbackLanguage,
		Delay:            config.GetDuration(cfg.Throttle.Delay),
	}
}
