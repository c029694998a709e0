package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher broadcasts messages on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher constructs a RedisPublisher.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Publish serialises msg and sends it to the channel. Zero subscribers is not an error.
func (p *RedisPublisher) Publish(ctx context.Context, msg Message) (string, error) {
	msg = stamp(msg)
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("encode notification: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, string(payload)).Err(); err != nil {
		return "", fmt.Errorf("publish notification: %w", err)
	}
	return msg.ID, nil
}
