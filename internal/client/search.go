package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// SearchClient implements iof.SearchClient.
type SearchClient struct {
	http *internalhttp.Client
}

func (c *SearchClient) Search(ctx context.Context, opts *iof.SearchOptions) (*iof.SearchResult, error) {
	resp, err := c.http.Get(ctx, apiPath("/search"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	var result iof.SearchResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *SearchClient) SearchContracts(ctx context.Context, query string, limit int) (*iof.SearchResult, error) {
	return c.searchScoped(ctx, "/search/contracts", query, limit)
}

func (c *SearchClient) SearchParties(ctx context.Context, query string, limit int) (*iof.SearchResult, error) {
	return c.searchScoped(ctx, "/search/parties", query, limit)
}

func (c *SearchClient) SearchCases(ctx context.Context, query string, limit int) (*iof.SearchResult, error) {
	return c.searchScoped(ctx, "/search/cases", query, limit)
}

func (c *SearchClient) searchScoped(ctx context.Context, path, query string, limit int) (*iof.SearchResult, error) {
	values := url.Values{}
	values.Set("q", query)

	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.http.Get(ctx, apiPath("%s", path), values)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", path, err)
	}

	var result iof.SearchResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Suggest returns completion suggestions for a query prefix.
func (c *SearchClient) Suggest(ctx context.Context, query, index string) ([]string, error) {
	values := url.Values{}
	values.Set("q", query)

	if index != "" {
		values.Set("index", index)
	}

	resp, err := c.http.Get(ctx, apiPath("/search/suggest"), values)
	if err != nil {
		return nil, fmt.Errorf("getting suggestions: %w", err)
	}

	var suggestions []string
	if err := decodeInto(resp, &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

func (c *SearchClient) ListIndexes(ctx context.Context) ([]string, error) {
	resp, err := c.http.Get(ctx, apiPath("/search/indexes"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing search indexes: %w", err)
	}

	var indexes []string
	if err := decodeInto(resp, &indexes); err != nil {
		return nil, err
	}

	return indexes, nil
}

func (c *SearchClient) GetIndexStats(ctx context.Context, index string) (*iof.IndexStats, error) {
	resp, err := c.http.Get(ctx, apiPath("/search/indexes/%s/stats", index), nil)
	if err != nil {
		return nil, fmt.Errorf("getting stats for index %s: %w", index, err)
	}

	var stats iof.IndexStats
	if err := decodeInto(resp, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Reindex triggers a rebuild of a search index.
func (c *SearchClient) Reindex(ctx context.Context, index string) (*iof.ReindexResult, error) {
	resp, err := c.http.Post(ctx, apiPath("/search/indexes/%s/reindex", index), nil)
	if err != nil {
		return nil, fmt.Errorf("reindexing %s: %w", index, err)
	}

	var result iof.ReindexResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
