package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis. It serializes concurrent
// edits of the same route across server instances.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireRouteLock attempts to acquire the edit lock for the given route.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRouteLock(ctx context.Context, routeID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:route:%s", routeID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseRouteLock releases the edit lock for the given route.
func (s *LockStore) ReleaseRouteLock(ctx context.Context, routeID string) error {
	key := fmt.Sprintf("lock:route:%s", routeID)

	return s.client.Del(ctx, key).Err()
}
