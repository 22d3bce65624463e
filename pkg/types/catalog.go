// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the catalog-export tool.
package types

// DatasetInfo is the partial record for one dataset as returned by the
// catalog listing. It carries only the lightweight fields the listing
// endpoint exposes; the description lives on the full Dataset record.
type DatasetInfo struct {
	// ID is the numeric dataset identifier assigned by the catalog.
	ID int `json:"id" yaml:"id"`

	// Name is the dataset name as it appears in the listing.
	Name string `json:"name" yaml:"name"`

	// Version is the dataset version number.
	Version int `json:"version" yaml:"version"`

	// Status is the catalog lifecycle status (e.g. "active", "deactivated").
	Status string `json:"status" yaml:"status"`
}

// Dataset is the full per-dataset record fetched on demand.
type Dataset struct {
	// ID is the numeric dataset identifier.
	ID int `json:"id" yaml:"id"`

	// Name is the dataset name from the full record.
	Name string `json:"name" yaml:"name"`

	// Description is the free-text dataset description.
	Description string `json:"description" yaml:"description"`

	// Format is the storage format reported by the catalog (e.g. "ARFF").
	Format string `json:"format" yaml:"format"`

	// UploadDate is the upload timestamp string as reported by the catalog.
	UploadDate string `json:"upload_date" yaml:"upload_date"`
}

// DatasetSummary is one exported row: the join of a listing entry and its
// fetched full record. Immutable once constructed; written exactly once.
type DatasetSummary struct {
	// ID is the dataset identifier, stringified for output.
	ID string `json:"id" yaml:"id"`

	// Name is the name from the listing's partial record.
	Name string `json:"title" yaml:"title"`

	// Description is the description from the fetched full record.
	Description string `json:"description" yaml:"description"`
}
