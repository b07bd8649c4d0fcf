// internal/scraper/list-components/models.go
package listcomponents

import (
	"context"

	httpclient "ui-registry-scraper/internal/common/http"
)

// Output holds the registry names in ascending order.
type Output struct {
	Names []string `json:"names"`
}

// Fetcher performs a single GET and returns the fully read response.
type Fetcher interface {
	Get(ctx context.Context, url string) (*httpclient.Response, error)
}
