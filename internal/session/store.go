// Package session keeps one redis entry per login so access tokens can
// be revoked before their expiry.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/garagehub/garagehub-api/internal/config"
)

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(cfg *config.Config) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &Store{
		client: client,
		ttl:    cfg.RefreshTokenTTL,
	}
}

func key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Create registers a new session and returns its id.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	if err := s.client.Set(ctx, key(sessionID), userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Has reports whether the session is still live.
func (s *Store) Has(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, key(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete revokes the session, invalidating all access tokens bound to it.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, key(sessionID)).Err()
}
