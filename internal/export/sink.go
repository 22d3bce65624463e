// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-export/pkg/types"
)

// Sink receives summary rows and writes them to the output file. Close
// flushes and releases the file; it is safe to call more than once.
type Sink interface {
	Write(row types.DatasetSummary) error
	Close() error
}

// defaultOutputs maps each format to its default output path in the
// working directory. The file is overwritten each run.
var defaultOutputs = map[types.Format]string{
	types.FormatCSV:    "dataset_descriptions.csv",
	types.FormatJSON:   "dataset_descriptions.json",
	types.FormatYAML:   "dataset_descriptions.yaml",
	types.FormatSQLite: "dataset_descriptions.db",
}

// OutputPath resolves the output path for cfg, applying the per-format
// default when no explicit path is configured.
func OutputPath(cfg types.ExportConfig) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	format := cfg.Format
	if format == "" {
		format = types.FormatCSV
	}
	return defaultOutputs[format]
}

// openSink creates the output file for cfg and returns a sink for it.
func openSink(cfg types.ExportConfig) (Sink, error) {
	path := OutputPath(cfg)
	switch cfg.Format {
	case types.FormatCSV, "":
		return newCSVSink(path)
	case types.FormatJSON:
		return newMarshalSink(path, marshalJSON), nil
	case types.FormatYAML:
		return newMarshalSink(path, yaml.Marshal), nil
	case types.FormatSQLite:
		return newSQLiteSink(path)
	default:
		return nil, fmt.Errorf("unsupported format %q: use csv, json, yaml, or sqlite", cfg.Format)
	}
}

// csvHeader is the fixed header row of the CSV output.
var csvHeader = []string{"Dataset ID", "Name", "Description"}

// csvSink streams rows to a CSV file, flushing after every row so an
// interrupted run leaves only whole rows behind.
type csvSink struct {
	f      *os.File
	w      *csv.Writer
	closed bool
}

func newCSVSink(path string) (*csvSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}
	return &csvSink{f: f, w: w}, nil
}

func (s *csvSink) Write(row types.DatasetSummary) error {
	if err := s.w.Write([]string{row.ID, row.Name, row.Description}); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *csvSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.w.Flush()
	flushErr := s.w.Error()
	closeErr := s.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// marshalSink collects rows and writes the marshaled document on Close.
type marshalSink struct {
	path    string
	marshal func(any) ([]byte, error)
	rows    []types.DatasetSummary
	closed  bool
}

func newMarshalSink(path string, marshal func(any) ([]byte, error)) *marshalSink {
	return &marshalSink{path: path, marshal: marshal, rows: []types.DatasetSummary{}}
}

func (s *marshalSink) Write(row types.DatasetSummary) error {
	s.rows = append(s.rows, row)
	return nil
}

func (s *marshalSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	data, err := s.marshal(s.rows)
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	return os.WriteFile(s.path, data, 0o644)
}

func marshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
