// Package session persists the serialized auth session so it can be
// restored across process restarts. A single key holds the whole
// {user, token, expires_at} object.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// ErrNoSession is returned when no persisted session exists
var ErrNoSession = errors.New("no persisted session")

// Store persists at most one auth session
type Store interface {
	// Save persists the session, replacing any existing one
	Save(ctx context.Context, session *domain.AuthSession) error
	// Load returns the persisted session, or ErrNoSession
	Load(ctx context.Context) (*domain.AuthSession, error)
	// Clear removes the persisted session; clearing an empty store is a no-op
	Clear(ctx context.Context) error
}

// FileStore persists the session as a JSON file on local disk
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed session store
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save persists the session, replacing any existing one
func (s *FileStore) Save(ctx context.Context, session *domain.AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load returns the persisted session, or ErrNoSession
func (s *FileStore) Load(ctx context.Context) (*domain.AuthSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	session := &domain.AuthSession{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return session, nil
}

// Clear removes the persisted session
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// RedisStore persists the session under a single Redis key with a TTL
// matching the session expiry
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "auth_session"
	}
	return &RedisStore{client: client, key: key}
}

// Save persists the session, replacing any existing one
func (s *RedisStore) Save(ctx context.Context, session *domain.AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}

	if err := s.client.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Load returns the persisted session, or ErrNoSession
func (s *RedisStore) Load(ctx context.Context) (*domain.AuthSession, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	session := &domain.AuthSession{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return session, nil
}

// Clear removes the persisted session
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
