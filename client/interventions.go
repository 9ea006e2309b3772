package client

import (
	"context"
	"net/http"
	"net/url"
)

// Interventions lists workflow records, optionally filtered by status
// ("pending", "in-progress", "completed"). "all" or "" lists everything.
func (c *Client) Interventions(ctx context.Context, status string) ([]Intervention, error) {
	query := url.Values{}
	if status != "" && status != "all" {
		query.Set("status", status)
	}
	var list []Intervention
	if err := c.do(ctx, http.MethodGet, "/api/interventions", query, nil, &list, "Failed to load interventions"); err != nil {
		return nil, err
	}
	if list == nil {
		list = []Intervention{}
	}
	return list, nil
}

func (c *Client) Intervention(ctx context.Context, interventionID string) (Intervention, error) {
	var iv Intervention
	path := "/api/interventions/" + url.PathEscape(interventionID)
	err := c.do(ctx, http.MethodGet, path, nil, nil, &iv, "Intervention not found")
	return iv, err
}
