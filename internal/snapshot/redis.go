package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/angelmondragon/modeststyle-backend/pkg/redis"
)

// KV is the subset of the redis client the snapshot store depends on.
type KV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SnapshotKey(namespace, owner string) string
}

// RedisStore keeps snapshots as redis strings with a sliding TTL.
type RedisStore struct {
	kv  KV
	ttl time.Duration
}

func NewRedisStore(kv KV, ttl time.Duration) (*RedisStore, error) {
	if kv == nil {
		return nil, errors.New("redis client required")
	}
	return &RedisStore{kv: kv, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, namespace, owner string) ([]byte, bool, error) {
	if err := validateKey(namespace, owner); err != nil {
		return nil, false, err
	}
	val, err := s.kv.Get(ctx, s.kv.SnapshotKey(namespace, owner))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(val), true, nil
}

func (s *RedisStore) Save(ctx context.Context, namespace, owner string, payload []byte) error {
	if err := validateKey(namespace, owner); err != nil {
		return err
	}
	return s.kv.Set(ctx, s.kv.SnapshotKey(namespace, owner), payload, s.ttl)
}

func (s *RedisStore) Delete(ctx context.Context, namespace, owner string) error {
	if err := validateKey(namespace, owner); err != nil {
		return err
	}
	return s.kv.Del(ctx, s.kv.SnapshotKey(namespace, owner))
}
