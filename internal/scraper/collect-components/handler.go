// internal/scraper/collect-components/handler.go
package collectcomponents

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"ui-registry-scraper/internal/common/errors"
	"ui-registry-scraper/internal/common/logger"
	"ui-registry-scraper/internal/common/metrics"
	"ui-registry-scraper/internal/common/observability"
	"ui-registry-scraper/internal/models"
	"ui-registry-scraper/pkg/registry"
)

const (
	TaskType = "collect-components"
)

type Handler struct {
	config *Config
	client Fetcher
	cache  PayloadCache
	obs    *observability.Observability
	errors *errors.Handler
	logger logger.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewHandler builds a collector. cache may be nil; obs may be nil.
func NewHandler(config *Config, client Fetcher, cache PayloadCache, obs *observability.Observability, log logger.Logger) *Handler {
	if obs == nil {
		obs = observability.NewNoop()
	}
	log = log.With(map[string]interface{}{
		"taskType": TaskType,
	})
	return &Handler{
		config: config,
		client: client,
		cache:  cache,
		obs:    obs,
		errors: errors.NewHandler(log),
		logger: log,
		sleep:  sleepContext,
	}
}

// Execute processes names strictly in order, one request at a time, and
// writes a section per component to sink. Component failures are logged
// and recorded in the output; they never stop the loop. Only a cancelled
// context ends processing early.
func (h *Handler) Execute(ctx context.Context, names []string, sink io.Writer) *Output {
	output := &Output{Results: make([]models.ComponentResult, 0, len(names))}

	for i, name := range names {
		if ctx.Err() != nil {
			output.Interrupted = true
			break
		}

		result := h.processComponent(ctx, name, sink)
		output.Results = append(output.Results, result)

		metrics.ComponentsProcessed.WithLabelValues(string(result.Outcome)).Inc()
		h.obs.RecordComponent(ctx, string(result.Outcome), result.Duration)

		if err := h.sleep(ctx, h.config.Delay); err != nil {
			output.Interrupted = i < len(names)-1
			break
		}
	}

	return output
}

// processComponent runs Pending -> Fetching -> {Skipped | ParseFailed | NoFiles | Written}.
func (h *Handler) processComponent(ctx context.Context, name string, sink io.Writer) models.ComponentResult {
	start := time.Now()
	ctx, span := h.obs.StartSpan(ctx, "component.process", attribute.String("component", name))
	defer span.End()

	result := h.collect(ctx, name, sink)
	result.Duration = time.Since(start)

	span.SetAttributes(attribute.String("outcome", string(result.Outcome)))
	if result.Err != nil && result.Outcome != models.OutcomeNoFiles {
		span.SetStatus(codes.Error, result.Err.Error())
	}
	return result
}

func (h *Handler) collect(ctx context.Context, name string, sink io.Writer) models.ComponentResult {
	result := models.ComponentResult{Name: name}

	body, fromCache, err := h.fetch(ctx, name)
	if err != nil {
		stdErr := h.errors.Handle(name, err)
		result.Err = stdErr
		result.StatusCode = stdErr.StatusCode
		if stdErr.Code == errors.ErrCodeComponentStatusNotOK {
			result.Outcome = models.OutcomeSkipped
		} else {
			result.Outcome = models.OutcomeFetchFailed
		}
		return result
	}
	result.FromCache = fromCache

	detail, err := registry.DecodeDetail(body)
	if err != nil {
		result.Err = h.errors.Handle(name, errors.NewComponentParseError(name, err))
		result.Outcome = models.OutcomeParseFailed
		return result
	}

	if !fromCache {
		h.store(ctx, name, body)
	}

	section, err := WriteSection(sink, name, detail, h.config.FallbackLanguage)
	result.FilesWritten = section.FilesWritten
	if err != nil {
		result.Err = h.errors.Handle(name, errors.NewDocumentWriteError(name, err))
		result.Outcome = models.OutcomeWriteFailed
		return result
	}
	if section.NoFiles {
		result.Err = h.errors.Handle(name, errors.NewComponentNoFilesError(name))
		result.Outcome = models.OutcomeNoFiles
		return result
	}

	result.Outcome = models.OutcomeWritten
	h.logger.Info("component written", map[string]interface{}{
		"component": name,
		"files":     section.FilesWritten,
		"fromCache": fromCache,
	})
	return result
}

// fetch returns the raw demo payload, from the cache when enabled.
func (h *Handler) fetch(ctx context.Context, name string) ([]byte, bool, error) {
	if h.cache != nil {
		body, hit, err := h.cache.Get(ctx, name)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			h.logger.Warn("cache lookup failed, fetching", map[string]interface{}{
				"component": name,
				"error":     err.Error(),
			})
		case hit:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return body, true, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	resp, err := h.client.Get(ctx, h.DemoURL(name))
	metrics.FetchDuration.WithLabelValues("demo").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, false, errors.NewComponentFetchError(name, err)
	}
	if !resp.OK() {
		return nil, false, errors.NewComponentStatusError(name, resp.StatusCode)
	}
	return resp.Body, false, nil
}

func (h *Handler) store(ctx context.Context, name string, body []byte) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, name, body); err != nil {
		h.logger.Warn("cache store failed", map[string]interface{}{
			"component": name,
			"error":     err.Error(),
		})
	}
}

// DemoURL interpolates the path-escaped name into the demo URL template.
func (h *Handler) DemoURL(name string) string {
	return strings.ReplaceAll(h.config.DemoURLTemplate, "{name}", url.PathEscape(name))
}

// sleepContext waits d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
