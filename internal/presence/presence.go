package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks which devices polled recently. Every accepted ingest refreshes
// a per-station key whose TTL covers a few missed polls; an expired key means
// the device went quiet.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore returns a redis-backed presence store.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Store{client: client, ttl: ttl}
}

func key(stationID int64) string {
	return fmt.Sprintf("station:%d:online", stationID)
}

// Touch refreshes the station's presence key.
func (s *Store) Touch(ctx context.Context, stationID int64) error {
	return s.client.Set(ctx, key(stationID), "1", s.ttl).Err()
}

// Online reports whether the station polled within the TTL window.
func (s *Store) Online(ctx context.Context, stationID int64) (bool, error) {
	n, err := s.client.Exists(ctx, key(stationID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
