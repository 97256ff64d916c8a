package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"discheck/internal/domain"
)

// ListApproved fetches approved disclaimers via GET /api/approved/,
// optionally filtered to one jurisdiction.
func (c *Client) ListApproved(ctx context.Context, jurisdiction domain.Jurisdiction) ([]domain.ApprovedDisclaimer, error) {
	var query url.Values
	if jurisdiction != "" {
		query = url.Values{"jurisdiction": {string(jurisdiction)}}
	}

	var out []domain.ApprovedDisclaimer
	if err := c.get(ctx, "/api/approved/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApproved fetches one approved disclaimer via GET /api/approved/{id}.
func (c *Client) GetApproved(ctx context.Context, id string) (*domain.ApprovedDisclaimer, error) {
	if id == "" {
		return nil, fmt.Errorf("disclaimer ID must not be empty")
	}
	var out domain.ApprovedDisclaimer
	if err := c.get(ctx, "/api/approved/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateApproved stores a new approved disclaimer via POST /api/approved/
// and returns the record with its assigned ID.
func (c *Client) CreateApproved(ctx context.Context, d *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error) {
	return c.writeApproved(ctx, http.MethodPost, "/api/approved/", d)
}

// UpdateApproved replaces an approved disclaimer via PUT /api/approved/{id}.
func (c *Client) UpdateApproved(ctx context.Context, id string, d *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error) {
	if id == "" {
		return nil, fmt.Errorf("disclaimer ID must not be empty")
	}
	return c.writeApproved(ctx, http.MethodPut, "/api/approved/"+url.PathEscape(id), d)
}

// DeleteApproved removes an approved disclaimer via DELETE /api/approved/{id}.
func (c *Client) DeleteApproved(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("disclaimer ID must not be empty")
	}
	req, requestID, err := c.newRequest(ctx, http.MethodDelete, "/api/approved/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return err
	}
	// The service replies {"message": "Disclaimer deleted successfully"}.
	return c.do(req, requestID, nil)
}

func (c *Client) writeApproved(ctx context.Context, method, p string, d *domain.ApprovedDisclaimer) (*domain.ApprovedDisclaimer, error) {
	bodyBytes, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling disclaimer: %w", err)
	}

	req, requestID, err := c.newRequest(ctx, method, p, nil, bytes.NewReader(bodyBytes), "application/json")
	if err != nil {
		return nil, err
	}

	var out domain.ApprovedDisclaimer
	if err := c.do(req, requestID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
