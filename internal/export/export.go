// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export runs the dataset export job: list the catalog index,
// fetch each dataset's full record, and write one summary row per
// successful fetch.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pdiddy/catalog-export/internal/openml"
	"github.com/pdiddy/catalog-export/pkg/types"
)

// Catalog is the remote metadata repository the job reads from. The
// openml package provides the production implementation; tests substitute
// an in-memory fake.
type Catalog interface {
	ListDatasets(ctx context.Context) (map[int]types.DatasetInfo, error)
	GetDataset(ctx context.Context, id int) (*types.Dataset, error)
}

// Summary holds the outcome of an export run.
type Summary struct {
	// Written counts rows emitted to the output sink.
	Written int

	// Failed counts ids whose full-record fetch failed.
	Failed int

	// Invalid counts ids fetched successfully but skipped for missing
	// name or description.
	Invalid int
}

// Total returns the number of ids processed.
func (s Summary) Total() int {
	return s.Written + s.Failed + s.Invalid
}

// Run lists the catalog and exports one row per dataset whose full record
// can be fetched. Ids are processed in ascending order so output is
// deterministic. Per-item failures are logged to w and skipped; a listing
// failure aborts the job before any row is written. Each fetch blocks the
// loop until it returns; there are no retries.
func Run(ctx context.Context, cat Catalog, cfg types.ExportConfig, w io.Writer) (Summary, error) {
	index, err := cat.ListDatasets(ctx)
	if err != nil {
		return Summary{}, err
	}

	sink, err := openSink(cfg)
	if err != nil {
		return Summary{}, fmt.Errorf("opening output: %w", err)
	}
	defer sink.Close()

	ids := make([]int, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var summary Summary
	for _, id := range ids {
		info := index[id]

		ds, err := cat.GetDataset(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "Error fetching dataset %d: %v\n", id, fetchCause(err))
			summary.Failed++
			continue
		}

		if info.Name == "" || ds.Description == "" {
			fmt.Fprintf(w, "Skipping dataset %d: missing or invalid data\n", id)
			summary.Invalid++
			continue
		}

		row := types.DatasetSummary{
			ID:          strconv.Itoa(id),
			Name:        info.Name,
			Description: ds.Description,
		}
		if err := sink.Write(row); err != nil {
			return summary, fmt.Errorf("writing row for dataset %d: %w", id, err)
		}
		summary.Written++
		fmt.Fprintf(w, "Processed dataset %d: %s\n", id, info.Name)
	}

	if err := sink.Close(); err != nil {
		return summary, fmt.Errorf("closing output: %w", err)
	}
	return summary, nil
}

// fetchCause strips the per-dataset wrapper from a fetch error so log
// lines do not repeat the id the loop already prints.
func fetchCause(err error) error {
	var fe *openml.FetchError
	if errors.As(err, &fe) && fe.Err != nil {
		return fe.Err
	}
	return err
}
