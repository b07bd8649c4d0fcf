// internal/scraper/collect-components/config.go
package collectcomponents

import "time"

type Config struct {
	// DemoURLTemplate is a full URL containing a {name} placeholder.
	DemoURLTemplate  string
	FallbackLanguage string
	Delay            time.Duration
}
