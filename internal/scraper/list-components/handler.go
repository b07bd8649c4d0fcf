// internal/scraper/list-components/handler.go
package listcomponents

import (
	"context"
	"time"

	"ui-registry-scraper/internal/common/errors"
	"ui-registry-scraper/internal/common/logger"
	"ui-registry-scraper/internal/common/metrics"
	"ui-registry-scraper/pkg/registry"
)

const (
	TaskType = "list-components"
)

type Handler struct {
	config *Config
	client Fetcher
	logger logger.Logger
}

func NewHandler(config *Config, client Fetcher, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
		logger: log.With(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

// Execute issues exactly one GET to the registry and returns the sorted
// component names. Every failure is fatal for the run and is returned as a
// REGISTRY_FETCH_FAILED or REGISTRY_PARSE_FAILED StandardError.
func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	h.logger.Info("fetching registry", map[string]interface{}{
		"url": h.config.RegistryURL,
	})

	start := time.Now()
	resp, err := h.client.Get(ctx, h.config.RegistryURL)
	metrics.FetchDuration.WithLabelValues("registry").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, errors.NewRegistryFetchError(h.config.RegistryURL, 0, err)
	}
	if !resp.OK() {
		return nil, errors.NewRegistryFetchError(h.config.RegistryURL, resp.StatusCode, nil)
	}

	names, err := registry.DecodeIndex(resp.Body)
	if err != nil {
		return nil, errors.NewRegistryParseError(err)
	}

	metrics.RegistryComponents.Set(float64(len(names)))
	h.logger.Info("registry listed", map[string]interface{}{
		"count": len(names),
	})

	return &Output{Names: names}, nil
}
