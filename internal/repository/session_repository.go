package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/sicei-api/internal/models"
)

// ErrSessionNotFound is returned when no session is stored under a session string.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores student sessions in Redis as JSON documents keyed by
// their session string.
type SessionRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionRepository constructs a session repository. A zero ttl keeps sessions
// until they are removed externally.
func NewSessionRepository(client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if prefix == "" {
		prefix = "session:"
	}
	return &SessionRepository{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

// Create persists a new session with the configured TTL.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.write(ctx, session, r.ttl)
}

// Update overwrites a stored session and keeps its remaining TTL.
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	return r.write(ctx, session, redis.KeepTTL)
}

// FindBySessionString loads a session.
func (r *SessionRepository) FindBySessionString(ctx context.Context, sessionString string) (*models.Session, error) {
	key := r.key(sessionString)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		r.logger.Warn("discarding unreadable session", zap.Error(err))
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (r *SessionRepository) write(ctx context.Context, session *models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}

	if err := r.client.Set(ctx, r.key(session.SessionString), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SessionRepository) key(sessionString string) string {
	return r.prefix + sessionString
}
