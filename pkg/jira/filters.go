package jira

import (
	"context"
	"net/http"
	"net/url"
)

// SearchFilters searches saved filters by name substring. Results come back
// in whatever order the server returns them.
func (c *Client) SearchFilters(ctx context.Context, name string) ([]Filter, error) {
	query := url.Values{}
	if name != "" {
		query.Set("filterName", name)
	}

	var resp filterSearchResponse
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/filter/search", query, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// ListFavouriteFilters returns the current user's favourite filters.
func (c *Client) ListFavouriteFilters(ctx context.Context) ([]Filter, error) {
	var filters []Filter
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/filter/favourite", nil, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

// GetFilter fetches full details for one filter, including description, JQL,
// and subscription count.
func (c *Client) GetFilter(ctx context.Context, id string) (*Filter, error) {
	var filter Filter
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/filter/"+url.PathEscape(id), nil, &filter); err != nil {
		return nil, err
	}
	return &filter, nil
}

// DeleteFilter deletes one filter. A single best-effort call; any non-2xx
// response is returned as an error.
func (c *Client) DeleteFilter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/rest/api/2/filter/"+url.PathEscape(id), nil, nil)
}
