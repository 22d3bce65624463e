// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openml implements a client for the OpenML dataset catalog.
// The listing endpoint supplies the catalog index (id, name, version,
// status); the per-dataset endpoint supplies the full record including
// the description.
package openml

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/catalog-export/internal/httputil"
	"github.com/pdiddy/catalog-export/pkg/types"
)

// apiBase is the OpenML JSON API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://www.openml.org/api/v1/json"

// Client queries the OpenML JSON API.
type Client struct {
	HTTP *http.Client
	Cfg  types.CatalogConfig
}

// NewClient returns a Client with a timeout-configured HTTP client.
func NewClient(cfg types.CatalogConfig) *Client {
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
	}
}

// ListDatasets retrieves the catalog index: a mapping from dataset id to
// its partial record. Any failure wraps into *CatalogError. When the same
// id appears more than once in the listing, the first occurrence wins.
func (c *Client) ListDatasets(ctx context.Context) (map[int]types.DatasetInfo, error) {
	reqURL := apiBase + "/data/list"
	if c.Cfg.Limit > 0 {
		// OpenML encodes listing filters as path segments.
		reqURL += "/limit/" + strconv.Itoa(c.Cfg.Limit)
	}
	reqURL = c.withAPIKey(reqURL)

	var lr listResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.Cfg.UserAgent, &lr); err != nil {
		return nil, &CatalogError{Err: err}
	}

	index := make(map[int]types.DatasetInfo, len(lr.Data.Datasets))
	for _, d := range lr.Data.Datasets {
		if _, ok := index[d.DID]; ok {
			continue
		}
		index[d.DID] = types.DatasetInfo{
			ID:      d.DID,
			Name:    d.Name,
			Version: d.Version,
			Status:  d.Status,
		}
	}
	return index, nil
}

// GetDataset retrieves the full record for one dataset. Any failure wraps
// into *FetchError carrying the dataset id.
func (c *Client) GetDataset(ctx context.Context, id int) (*types.Dataset, error) {
	reqURL := c.withAPIKey(fmt.Sprintf("%s/data/%d", apiBase, id))

	var dr describeResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.Cfg.UserAgent, &dr); err != nil {
		return nil, &FetchError{ID: id, Err: err}
	}
	if dr.Error != nil {
		return nil, &FetchError{ID: id, Err: fmt.Errorf("API error %s: %s", dr.Error.Code, dr.Error.Message)}
	}

	desc := dr.Description
	parsedID, err := strconv.Atoi(strings.TrimSpace(desc.ID))
	if err != nil {
		parsedID = id
	}

	return &types.Dataset{
		ID:          parsedID,
		Name:        desc.Name,
		Description: desc.Description,
		Format:      desc.Format,
		UploadDate:  desc.UploadDate,
	}, nil
}

// withAPIKey appends the configured api_key query parameter, if any.
func (c *Client) withAPIKey(reqURL string) string {
	if c.Cfg.APIKey == "" {
		return reqURL
	}
	params := url.Values{"api_key": {c.Cfg.APIKey}}
	return reqURL + "?" + params.Encode()
}

// OpenML API JSON structures.
type listResponse struct {
	Data listData `json:"data"`
}

type listData struct {
	Datasets []listDataset `json:"dataset"`
}

type listDataset struct {
	DID     int    `json:"did"`
	Name    string `json:"name"`
	Version int    `json:"version"`
	Status  string `json:"status"`
}

type describeResponse struct {
	Description datasetDescription `json:"data_set_description"`
	Error       *apiError          `json:"error"`
}

// datasetDescription carries string-typed numerics because the OpenML
// describe endpoint serializes id and version as JSON strings.
type datasetDescription struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Format      string `json:"format"`
	UploadDate  string `json:"upload_date"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
