package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// WebhookPublisher POSTs messages as JSON to an HTTP endpoint.
type WebhookPublisher struct {
	client *resty.Client
	url    string
}

// NewWebhookPublisher constructs a WebhookPublisher.
func NewWebhookPublisher(url string, timeout time.Duration) *WebhookPublisher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cli := resty.New().SetTimeout(timeout)
	return &WebhookPublisher{client: cli, url: url}
}

// Publish sends msg and treats any non-2xx answer as a rejection.
func (p *WebhookPublisher) Publish(ctx context.Context, msg Message) (string, error) {
	msg = stamp(msg)
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Message-ID", msg.ID).
		SetBody(msg).
		Post(p.url)
	if err != nil {
		return "", fmt.Errorf("webhook request: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return "", fmt.Errorf("%w: http %d: %s", ErrRejected, resp.StatusCode(), body)
	}
	return msg.ID, nil
}
