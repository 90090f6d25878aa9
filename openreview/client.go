// Package openreview is a minimal client for the OpenReview notes and
// profiles endpoints. It speaks both API generations: v1 for ICLR
// 2018-2023 and v2 for 2024 onward, normalizing the differing response
// shapes into the pipeline's tables.
package openreview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
)

// Default API endpoints.
const (
	DefaultV1BaseURL = "https://api.openreview.net"
	DefaultV2BaseURL = "https://api2.openreview.net"
)

const maxFetchAttempts = 5

// Client talks to the OpenReview API.
type Client struct {
	V1BaseURL  string
	V2BaseURL  string
	HTTPClient *http.Client

	// RateDelay is slept between successive paginated requests.
	RateDelay time.Duration
}

// NewClient returns a client with the public endpoints and a 60s request
// timeout.
func NewClient() *Client {
	return &Client{
		V1BaseURL: DefaultV1BaseURL,
		V2BaseURL: DefaultV2BaseURL,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// getJSON fetches a URL with query params and retries on rate limits,
// server errors, and malformed bodies. The OpenReview API signals
// throttling both with HTTP 429 and with a 200-status body whose name is
// RateLimitError; both are retried.
func (c *Client) getJSON(ctx context.Context, rawURL string, params url.Values) (gjson.Result, error) {
	var result gjson.Result

	operation := func() error {
		u := rawURL
		if len(params) > 0 {
			u += "?" + params.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			slog.Warn("server busy, backing off", "status", resp.StatusCode, "url", rawURL)
			return fmt.Errorf("server busy: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if !gjson.ValidBytes(body) {
			return fmt.Errorf("GET %s: response was not valid JSON", rawURL)
		}

		parsed := gjson.ParseBytes(body)
		if parsed.Get("name").String() == "RateLimitError" {
			slog.Warn("rate limited by API, backing off", "url", rawURL)
			return fmt.Errorf("rate limited")
		}

		result = parsed
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchAttempts), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return gjson.Result{}, fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	if c.RateDelay > 0 {
		select {
		case <-time.After(c.RateDelay):
		case <-ctx.Done():
			return gjson.Result{}, ctx.Err()
		}
	}

	return result, nil
}
