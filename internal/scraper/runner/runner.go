// internal/scraper/runner/runner.go
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"ui-registry-scraper/internal/common/errors"
	"ui-registry-scraper/internal/common/logger"
	"ui-registry-scraper/internal/common/observability"
	"ui-registry-scraper/internal/models"
	collect "ui-registry-scraper/internal/scraper/collect-components"
	list "ui-registry-scraper/internal/scraper/list-components"
)

// Runner drives one list -> fetch-each -> format -> write pass.
type Runner struct {
	config *Config
	client list.Fetcher
	cache  collect.PayloadCache
	obs    *observability.Observability
	logger logger.Logger
}

// New builds a Runner. cache and obs may be nil.
func New(config *Config, client list.Fetcher, cache collect.PayloadCache, obs *observability.Observability, log logger.Logger) *Runner {
	if obs == nil {
		obs = observability.NewNoop()
	}
	return &Runner{
		config: config,
		client: client,
		cache:  cache,
		obs:    obs,
		logger: log,
	}
}

// Run lists the registry and writes the reference document. A registry
// failure is returned before the output file is created. Once the file is
// open, component failures are only logged; the returned error is non-nil
// only when the document itself could not be created, headed or closed.
func (r *Runner) Run(ctx context.Context) (*models.RunSummary, error) {
	runID := uuid.New().String()
	log := r.logger.With(map[string]interface{}{"runId": runID})
	summary := models.NewRunSummary(runID, r.config.OutputPath)

	names, err := r.list(ctx, log)
	if err != nil {
		errors.NewHandler(log).Handle("", err)
		return nil, err
	}
	summary.Listed = len(names)

	file, err := os.Create(r.config.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", r.config.OutputPath, err)
	}

	if err := collect.WriteHeader(file, r.config.Title, r.config.Intro); err != nil {
		file.Close()
		return nil, fmt.Errorf("write document header: %w", err)
	}

	log.Info("building reference document", map[string]interface{}{
		"components": len(names),
		"output":     r.config.OutputPath,
	})

	collector := collect.NewHandler(&collect.Config{
		DemoURLTemplate:  r.config.DemoURLTemplate,
		FallbackLanguage: r.config.FallbackLanguage,
		Delay:            r.config.Delay,
	}, r.client, r.cache, r.obs, log)

	output := collector.Execute(ctx, names, file)
	for _, result := range output.Results {
		summary.Add(result)
	}

	closeErr := file.Close()
	summary.FinishedAt = time.Now().UTC()

	if output.Interrupted {
		log.Warn("run interrupted", map[string]interface{}{
			"processed": len(output.Results),
			"listed":    len(names),
		})
	}
	if closeErr != nil {
		return summary, fmt.Errorf("close output %s: %w", r.config.OutputPath, closeErr)
	}

	log.Info("reference document complete", summary.Fields())
	return summary, nil
}

func (r *Runner) list(ctx context.Context, log logger.Logger) ([]string, error) {
	ctx, span := r.obs.StartSpan(ctx, "registry.list")
	defer span.End()

	output, err := list.NewHandler(&list.Config{RegistryURL: r.config.RegistryURL}, r.client, log).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return output.Names, nil
}
