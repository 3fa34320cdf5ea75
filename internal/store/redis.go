package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/runehealth/rune_backend/internal/intake"
)

// redisKeySession returns the Redis key for an intake session.
func redisKeySession(id string) string { return "session:" + id }

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a SessionStore backed by Redis. Sessions are
// stored as JSON under "session:<id>" with the given TTL; every Put
// refreshes the TTL so active conversations do not expire mid-dialog.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) SessionStore {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Put(ctx context.Context, sess *intake.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeySession(sess.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*intake.Session, error) {
	raw, err := s.rdb.Get(ctx, redisKeySession(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var sess intake.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, redisKeySession(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
