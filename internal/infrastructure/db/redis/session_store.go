package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps sessions in Redis, keyed by an opaque 256-bit token.
// Key format: session:<token> -> user id.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A ttl of zero means sessions live until they are explicitly ended.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Start creates a session for userID and returns its token.
func (s *SessionStore) Start(ctx context.Context, userID string) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session start: %w", err)
	}
	return token, nil
}

// Resolve returns the user id behind token, or domain.ErrAnonymous when the
// token is unknown or has been ended.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrAnonymous
	}
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrAnonymous
		}
		return "", fmt.Errorf("session resolve: %w", err)
	}
	return userID, nil
}

// End destroys the session, so a replayed token no longer resolves.
func (s *SessionStore) End(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session end: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}

// newSessionToken draws 32 bytes from crypto/rand. The token is a
// capability: guessing it must be as hard as guessing the random bytes.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
