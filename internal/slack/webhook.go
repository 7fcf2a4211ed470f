package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "Chime/0.1.0"

// HTTPDoer describes the HTTP client used for webhook delivery.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookClient delivers messages to a Slack incoming webhook. Each message
// is sent exactly once; retry policy belongs to the caller (and the caller's
// policy is "never").
type WebhookClient struct {
	endpoint   string
	httpClient HTTPDoer
}

// WebhookOption configures a WebhookClient.
type WebhookOption func(*WebhookClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) WebhookOption {
	return func(c *WebhookClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewWebhookClient builds a webhook client for the given endpoint.
func NewWebhookClient(endpoint string, timeout time.Duration, opts ...WebhookOption) (*WebhookClient, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("slack webhook url required (set the webhook_url input or SLACK_WEBHOOK_URL)")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &WebhookClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Send posts the message to the webhook.
func (c *WebhookClient) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A *url.Error embeds the full request URL, which here is the
		// secret webhook endpoint. Keep only the underlying cause so the
		// error can be logged.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
