// internal/scraper/collect-components/models.go
package collectcomponents

import (
	"context"

	httpclient "ui-registry-scraper/internal/common/http"
	"ui-registry-scraper/internal/models"
)

// Output lists one result per processed component, in processing order.
type Output struct {
	Results []models.ComponentResult `json:"results"`
	// Interrupted is set when the context ended before every name was processed.
	Interrupted bool `json:"interrupted,omitempty"`
}

// Fetcher performs a single GET and returns the fully read response.
type Fetcher interface {
	Get(ctx context.Context, url string) (*httpclient.Response, error)
}

// PayloadCache stores raw demo payload bodies by component name.
type PayloadCache interface {
	Get(ctx context.Context, component string) ([]byte, bool, error)
	Set(ctx context.Context, component string, body []byte) error
}
