// internal/scraper/list-components/config.go
package listcomponents

type Config struct {
	RegistryURL string
}
