package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/sicei-api/pkg/config"
)

// ErrRejected is returned when the remote end refuses a message.
var ErrRejected = errors.New("notify: message rejected")

// Message is the broadcast envelope shared by every publisher.
type Message struct {
	ID         string            `json:"id"`
	Subject    string            `json:"subject"`
	Body       string            `json:"message"`
	Attributes map[string]string `json:"attributes,omitempty"`
	SentAt     time.Time         `json:"sentAt"`
}

// Publisher delivers a message and returns its id.
type Publisher interface {
	Publish(ctx context.Context, msg Message) (string, error)
}

// New builds the publisher selected by cfg.Driver. The "none" driver yields a nil
// publisher so callers can report the feature as unavailable.
func New(cfg config.NotificationConfig, rdb *redis.Client) (Publisher, error) {
	switch cfg.Driver {
	case "", config.NotifyDriverNone:
		return nil, nil
	case config.NotifyDriverRedis:
		if rdb == nil {
			return nil, errors.New("notify: redis driver requires a redis client")
		}
		return NewRedisPublisher(rdb, cfg.Channel), nil
	case config.NotifyDriverWebhook:
		return NewWebhookPublisher(cfg.WebhookURL, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("notify: unsupported driver %q", cfg.Driver)
	}
}

func stamp(msg Message) Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}
	return msg
}
