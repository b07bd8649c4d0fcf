// cmd/tools/registry-inspect/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ui-registry-scraper/internal/common/config"
	httpclient "ui-registry-scraper/internal/common/http"
	"ui-registry-scraper/internal/common/logger"
	"ui-registry-scraper/internal/models"
	collect "ui-registry-scraper/internal/scraper/collect-components"
	list "ui-registry-scraper/internal/scraper/list-components"
	"ui-registry-scraper/pkg/registry"
)

var (
	cfgFile       string
	componentName string
)

var rootCmd = &cobra.Command{
	Use:           "registry-inspect",
	Short:         "Inspect the component registry without writing the reference document",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print registry component names, one per line, in document order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runList(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Fetch one component and print the section it would produce",
	Long: `Fetch a single component's demo payload and print its markdown section.

Examples:
  registry-inspect show 3d-card
  registry-inspect show bento-grid --config configs/config.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runShow(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <snapshot.json>",
	Short: "Render a saved demo payload as a markdown section",
	Long: `Render a demo payload stored on disk. The section heading uses --name,
or the file name with any "-demo.json" / ".json" suffix removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runRender(args[0], componentName, cfg.Output.FallbackLanguage, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: configs/config.yaml lookup)")
	renderCmd.Flags().StringVarP(&componentName, "name", "n", "", "component name for the section heading")

	rootCmd.AddCommand(listCmd, showCmd, renderCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	return config.Load()
}

func newClient(cfg *config.Config) *httpclient.Client {
	return httpclient.NewClient(config.GetDuration(cfg.Registry.Timeout), cfg.Registry.UserAgent)
}

func runList(ctx context.Context, cfg *config.Config, out io.Writer) error {
	handler := list.NewHandler(&list.Config{RegistryURL: cfg.Registry.BaseURL}, newClient(cfg), logger.NewNoOpLogger())
	output, err := handler.Execute(ctx)
	if err != nil {
		return err
	}
	for _, name := range output.Names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func runShow(ctx context.Context, cfg *config.Config, name string, out io.Writer) error {
	collector := collect.NewHandler(&collect.Config{
		DemoURLTemplate:  cfg.Registry.DemoTemplate(),
		FallbackLanguage: cfg.Output.FallbackLanguage,
		Delay:            time.Duration(0),
	}, newClient(cfg), nil, nil, logger.NewNoOpLogger())

	output := collector.Execute(ctx, []string{name}, out)
	if len(output.Results) == 0 {
		return fmt.Errorf("%s: not processed", name)
	}
	result := output.Results[0]
	if result.Err != nil && result.Outcome != models.OutcomeNoFiles {
		return fmt.Errorf("%s: %s: %w", name, result.Outcome, result.Err)
	}
	return nil
}

func runRender(path, name, fallback string, out io.Writer) error {
	detail, err := registry.LoadDetail(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if name == "" {
		name = snapshotName(path)
	}
	_, err = collect.WriteSection(out, name, detail, fallback)
	return err
}

func snapshotName(path string) string {
	base := filepath.Base(path)
	if trimmed := strings.TrimSuffix(base, "-demo.json"); trimmed != base {
		return trimmed
	}
	return strings.TrimSuffix(base, ".json")
}
