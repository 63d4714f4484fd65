package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 30 * time.Minute

// RedisSessionStore keeps the last applied filter criteria of each listing
// session in Redis, so the normalizer can tell a page-only change from a
// filter change even across storefront instances.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return "catalog:session:" + sessionID
}

func (s *RedisSessionStore) LoadCriteria(ctx context.Context, sessionID string) (*catalog.FilterCriteria, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var criteria catalog.FilterCriteria
	if err := json.Unmarshal(payload, &criteria); err != nil {
		return nil, err
	}
	return &criteria, nil
}

func (s *RedisSessionStore) SaveCriteria(ctx context.Context, sessionID string, criteria *catalog.FilterCriteria) error {
	payload, err := json.Marshal(criteria)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), payload, sessionTTL).Err()
}
