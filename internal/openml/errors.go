// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openml

import "fmt"

// CatalogError indicates the catalog listing itself could not be retrieved.
// It is fatal: the export job aborts before writing any row.
type CatalogError struct {
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog unavailable: %v", e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// FetchError indicates the full record for a single dataset could not be
// fetched. It is recovered per item: the export loop logs it and continues.
type FetchError struct {
	ID  int
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching dataset %d: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
