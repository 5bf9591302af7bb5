package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrijs2005/recordsync/internal/client/models"
	"github.com/dmitrijs2005/recordsync/internal/common"
	"github.com/dmitrijs2005/recordsync/internal/netx"
)

// HTTPClient implements Client over the backend's JSON API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient validates baseURL (http or https, with host) and returns a
// client. A zero timeout means requests are bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q: missing host", baseURL)
	}

	hc := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}, nil
}

// ListRecords fetches the full record list.
func (c *HTTPClient) ListRecords(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	if err := c.do(ctx, http.MethodGet, common.RecordsPath, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// AddRecord submits content as a new record.
func (c *HTTPClient) AddRecord(ctx context.Context, content string) (*models.AddResponse, error) {
	var resp models.AddResponse
	if err := c.do(ctx, http.MethodPost, common.AddRecordPath, models.AddRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	req, err := netx.NewJSONRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	id, ok := RequestIDFrom(ctx)
	if !ok {
		id = NewRequestID()
	}
	req.Header.Set(common.RequestIDHeader, id)

	err = netx.DoJSON(c.hc, req, out)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, netx.ErrTransport):
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	default:
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
}
