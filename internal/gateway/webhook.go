package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultWebhookTimeout  = 10 * time.Second
	defaultWebhookRetries  = 3
	initialWebhookInterval = 200 * time.Millisecond
)

// WebhookGateway POSTs messages to incoming-webhook URLs; the channel entry in
// the subscription set is the webhook URL itself. Transient failures are
// retried with exponential backoff within one send attempt.
type WebhookGateway struct {
	httpClient *http.Client
	maxRetries int
}

// NewWebhookGateway constructs a WebhookGateway. maxRetries <= 0 uses the
// default.
func NewWebhookGateway(client *http.Client, maxRetries int) *WebhookGateway {
	if client == nil {
		client = &http.Client{Timeout: defaultWebhookTimeout}
	}
	if maxRetries <= 0 {
		maxRetries = defaultWebhookRetries
	}
	return &WebhookGateway{
		httpClient: client,
		maxRetries: maxRetries,
	}
}

func (g *WebhookGateway) Send(ctx context.Context, channel, message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return fmt.Errorf("webhook payload: %w", err)
	}

	operation := func() error {
		return g.post(ctx, channel, payload)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(initialWebhookInterval),
		), uint64(g.maxRetries)),
		ctx,
	)
	return backoff.Retry(operation, policy)
}

func (g *WebhookGateway) post(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	default:
		// Client errors will not improve with retries.
		return backoff.Permanent(fmt.Errorf("webhook status %d", resp.StatusCode))
	}
}

func (g *WebhookGateway) Name() string { return "webhook" }
