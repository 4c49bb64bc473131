// Package sheet retrieves the Google Sheets CSV exports the generators read
// and decodes their rows. Downloads go through a pluggable cache so the
// generators can run offline against the last fetched copy.
package sheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ExportURL builds the public CSV export URL for one tab of a spreadsheet.
func ExportURL(spreadsheetID, gid string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", spreadsheetID, gid)
}

// Client downloads sheet tabs as CSV.
type Client struct {
	SpreadsheetID string

	// BaseURL overrides the Google Docs host, for tests.
	BaseURL string

	http   *http.Client
	cache  Cache
	logger *slog.Logger
}

// NewClient creates a Client caching downloads in cache.
func NewClient(spreadsheetID string, cache Cache, logger *slog.Logger) *Client {
	return &Client{
		SpreadsheetID: spreadsheetID,
		http:          &http.Client{Timeout: 30 * time.Second},
		cache:         cache,
		logger:        logger,
	}
}

// Fetch downloads the tab identified by gid and stores it in the cache.
// The sheet must be shared as "anyone with the link can view", otherwise
// Google answers with a redirect to a login page and a non-200 status.
func (c *Client) Fetch(ctx context.Context, gid string) ([]byte, error) {
	url := ExportURL(c.SpreadsheetID, gid)
	if c.BaseURL != "" {
		url = fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", c.BaseURL, c.SpreadsheetID, gid)
	}
	c.logger.Debug("fetching sheet", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet gid=%s: %w", gid, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet gid=%s: unexpected status %s (is the sheet link-shareable?)", gid, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read sheet body: %w", err)
	}

	if err := c.cache.Put(ctx, c.cacheKey(gid), data); err != nil {
		// A failed cache write does not invalidate the download.
		c.logger.Warn("cache write failed", "gid", gid, "err", err)
	}
	return data, nil
}

// Cached returns the last downloaded copy of the tab, or ErrCacheMiss.
func (c *Client) Cached(ctx context.Context, gid string) ([]byte, error) {
	return c.cache.Get(ctx, c.cacheKey(gid))
}

func (c *Client) cacheKey(gid string) string {
	return c.SpreadsheetID + "-" + gid + ".csv"
}
