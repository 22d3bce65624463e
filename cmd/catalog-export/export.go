// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-export/internal/export"
	"github.com/pdiddy/catalog-export/internal/openml"
	"github.com/pdiddy/catalog-export/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "catalog-export/0.1"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-dataset summaries to a local file",
	Long: `Export lists the catalog index, fetches each dataset's full record in
ascending id order, and writes one row per successful fetch. Fetch
failures are logged and skipped; the run continues. The output file is
overwritten each run (default: dataset_descriptions.csv in the working
directory).`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "output file path (default derived from --format)")
	exportCmd.Flags().String("format", "", "output format: csv, json, yaml, or sqlite (default csv)")
	exportCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	exportCmd.Flags().Int("limit", 0, "maximum catalog entries to list (0 = all)")
	exportCmd.Flags().String("api-key", "", "OpenML API key (default: openml-api-key secret)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	catCfg := catalogConfigFromFlags(cmd)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("export.output")
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("export.format")
	}
	expCfg := types.ExportConfig{
		Output: output,
		Format: types.Format(format),
	}

	client := openml.NewClient(catCfg)
	summary, err := export.Run(context.Background(), client, expCfg, os.Stdout)
	if err != nil {
		return err
	}

	// Individual fetch failures do not change the exit status; the
	// summary line is the only place they are counted.
	fmt.Printf("\nExported %d dataset(s) to %s (%d failed, %d skipped)\n",
		summary.Written, export.OutputPath(expCfg), summary.Failed, summary.Invalid)
	return nil
}

// catalogConfigFromFlags builds the catalog client configuration from
// command flags, falling back to config file values and loaded secrets.
func catalogConfigFromFlags(cmd *cobra.Command) types.CatalogConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("catalog.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = viper.GetInt("catalog.limit")
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	apiKey = secretDefault("openml-api-key", apiKey)
	if apiKey == "" {
		apiKey = viper.GetString("catalog.api_key")
	}

	return types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIKey: apiKey,
		Limit:  limit,
	}
}
