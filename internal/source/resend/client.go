package resend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// UpstreamError is a non-2xx response from the provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// MinInterval is the minimum spacing between consecutive API calls.
	// The provider quota is consumed by failed calls too, so the spacing
	// clock advances on every call regardless of outcome.
	MinInterval time.Duration
}

// Client issues authenticated calls to the provider API with a minimum
// inter-call spacing. Call sites are sequential; concurrent callers
// would need a shared token bucket instead.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	interval   time.Duration
	last       time.Time
	logger     *slog.Logger
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		interval:   cfg.MinInterval,
		logger:     logger,
	}
}

func (c *Client) call(ctx context.Context, method, path string, out any) error {
	if err := c.throttle(ctx); err != nil {
		return err
	}
	defer func() { c.last = time.Now() }()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// throttle blocks until the minimum spacing since the previous call has
// elapsed, honoring ctx cancellation.
func (c *Client) throttle(ctx context.Context) error {
	if c.last.IsZero() {
		return nil
	}

	wait := c.interval - time.Since(c.last)
	if wait <= 0 {
		return nil
	}

	c.logger.Debug("throttling api call", "wait", wait)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
