// Package nlp is a client for an external entity tagging service.
//
// The service accepts POST <endpoint>/ents with {"text": "..."} and answers
// with a JSON array of {text, label, start, end} spans.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hyperjump/clausewise/internal/models"
)

// ErrUnavailable is returned when the tagging service is not configured,
// cannot be reached, or answers with a non-2xx status.
var ErrUnavailable = errors.New("nlp service unavailable")

const (
	defaultTimeout = 10 * time.Second
	maxResponse    = 16 << 20
)

// Client talks to the tagging service.
type Client struct {
	endpoint string
	http     *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient returns a client for endpoint. A zero timeout uses 10s.
func NewClient(endpoint string, timeout time.Duration, opts ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != ""
}

type tagRequest struct {
	Text string `json:"text"`
}

// TagEntities sends text to the service and returns the tagged spans.
func (c *Client) TagEntities(ctx context.Context, text string) ([]models.TaggedSpan, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: no endpoint configured", ErrUnavailable)
	}

	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/ents", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponse))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var spans []models.TaggedSpan
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponse)).Decode(&spans); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return spans, nil
}
