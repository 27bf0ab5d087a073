package jira

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// BoardListOptions narrow a board listing. Zero values mean no constraint.
type BoardListOptions struct {
	// Name filters server-side to boards whose name contains this string
	// (case-insensitive).
	Name string
	// Type restricts to a board type: "scrum", "kanban", or "simple".
	Type string
	// ProjectKeyOrID restricts to boards of one project.
	ProjectKeyOrID string
}

// ListBoards lists agile boards visible to the current user, optionally
// narrowed by opts. Results keep the server's order.
func (c *Client) ListBoards(ctx context.Context, opts BoardListOptions) ([]Board, error) {
	query := url.Values{}
	if opts.Name != "" {
		query.Set("name", opts.Name)
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.ProjectKeyOrID != "" {
		query.Set("projectKeyOrId", opts.ProjectKeyOrID)
	}

	var resp boardListResponse
	if err := c.do(ctx, http.MethodGet, "/rest/agile/1.0/board", query, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// SearchBoards searches boards by name substring, server-side.
func (c *Client) SearchBoards(ctx context.Context, name string) ([]Board, error) {
	return c.ListBoards(ctx, BoardListOptions{Name: name})
}

// GetBoard fetches full details for one board.
func (c *Client) GetBoard(ctx context.Context, id int64) (*Board, error) {
	var board Board
	if err := c.do(ctx, http.MethodGet, "/rest/agile/1.0/board/"+strconv.FormatInt(id, 10), nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// DeleteBoard deletes one board. A single best-effort call; any non-2xx
// response is returned as an error.
func (c *Client) DeleteBoard(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/rest/agile/1.0/board/"+strconv.FormatInt(id, 10), nil, nil)
}
