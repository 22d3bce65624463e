// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-export/internal/openml"
	"github.com/pdiddy/catalog-export/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog index without fetching full records",
	Long: `List retrieves the catalog index and prints the partial record for each
dataset (id, name, version, status). Descriptions require the full
record and are only fetched by the export command.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	listCmd.Flags().Int("limit", 0, "maximum catalog entries to list (0 = all)")
	listCmd.Flags().String("api-key", "", "OpenML API key (default: openml-api-key secret)")
	listCmd.Flags().Bool("json", false, "output the index as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catCfg := catalogConfigFromFlags(cmd)

	client := openml.NewClient(catCfg)
	index, err := client.ListDatasets(context.Background())
	if err != nil {
		return err
	}

	entries := make([]types.DatasetInfo, 0, len(index))
	for _, info := range index {
		entries = append(entries, info)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-8s  %-50s  %-8s  %s\n", "ID", "Name", "Version", "Status")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, e := range entries {
		name := e.Name
		if len(name) > 50 {
			name = name[:47] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-8d  %-50s  %-8d  %s\n", e.ID, name, e.Version, e.Status)
	}
	fmt.Fprintf(os.Stdout, "\n%d datasets\n", len(entries))
	return nil
}
