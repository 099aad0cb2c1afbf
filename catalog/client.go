package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/westchamp24/tnm-download-cli/config"
)

// Client queries the TNM Access products endpoint for catalog items
// available within a bounding box.
type Client struct {
	baseURL    string
	maxRecords int
	httpClient *http.Client
}

// NewClient builds a catalog client from the application configuration.
func NewClient(cfg *config.AppConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		maxRecords: cfg.MaxRecords,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Products returns every catalog item the service reports for the given
// extent, along with the advisory message and error lists from the response
// envelope. Any transport failure or non-200 status is fatal to the query;
// there are no partial results.
func (c *Client) Products(ctx context.Context, bbox BoundingBox) (*ProductsResponse, error) {
	query := url.Values{}
	query.Set("bbox", bbox.String())
	query.Set("offset", "0")
	query.Set("max", strconv.Itoa(c.maxRecords))

	reqURL := c.baseURL + "/products?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building products request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying products API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("products API returned HTTP %d", resp.StatusCode)
	}

	var products ProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding products response: %w", err)
	}

	return &products, nil
}
