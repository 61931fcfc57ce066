// Package frappe integrates the external frappe-library bibliographic
// catalog: a search client, an optional redis page cache, and the batch
// importer that turns catalog records into books.
package frappe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Gin_postgres_library_management/engine"
)

const DefaultAPIURL = "https://frappe.io/api/method/frappe-library"

// BookRecord is one catalog row as the frappe API ships it.
type BookRecord struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	ISBN      string `json:"isbn"`
	Publisher string `json:"publisher"`
}

// SearchParams are forwarded verbatim as query parameters; empty fields
// are omitted.
type SearchParams struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	ISBN      string `json:"isbn"`
	Publisher string `json:"publisher"`
	Page      int    `json:"page"`
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	if p.Title != "" {
		v.Set("title", p.Title)
	}
	if p.Authors != "" {
		v.Set("authors", p.Authors)
	}
	if p.ISBN != "" {
		v.Set("isbn", p.ISBN)
	}
	if p.Publisher != "" {
		v.Set("publisher", p.Publisher)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

func (p SearchParams) cacheKey() string { return p.values().Encode() }

type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
}

// NewClient builds a catalog client; cache may be nil to bypass caching.
func NewClient(baseURL string, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

// Search fetches one page of catalog records. Responses are cached per
// parameter set when a cache is attached.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]BookRecord, error) {
	key := p.cacheKey()
	if c.cache != nil {
		if recs, ok := c.cache.GetPage(ctx, key); ok {
			return recs, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, engine.Upstream(err)
	}
	req.URL.RawQuery = p.values().Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, engine.Upstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, engine.Upstream(fmt.Errorf("catalog returned status %d", resp.StatusCode))
	}

	var envelope struct {
		Message []BookRecord `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, engine.Upstream(err)
	}

	if c.cache != nil {
		c.cache.SetPage(ctx, key, envelope.Message)
	}
	return envelope.Message, nil
}
