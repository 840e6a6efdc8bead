package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/pathviz/search"
)

// lockExpiry bounds how long a crashed holder can block a key.
const lockExpiry = 30 * time.Second

// Redis is a Store backed by Redis. Values are JSON-encoded results stored
// under prefix+key with a TTL. It also implements Locker with redsync.
type Redis struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// NewRedis wraps client. A ttl of zero stores entries without expiry.
func NewRedis(client *redis.Client, ttl time.Duration, prefix string) *Redis {
	return &Redis{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
		prefix: prefix,
	}
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, key string) (*search.Result, bool, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get %s: %w", key, err)
	}

	var res search.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("cache: decoding %s: %w", key, err)
	}

	return &res, true, nil
}

// Put implements Store.
func (r *Redis) Put(ctx context.Context, key string, res *search.Result) error {
	if res == nil {
		return ErrNilResult
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set %s: %w", key, err)
	}

	return nil
}

// Lock implements Locker.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	mutex := r.locker.NewMutex(r.prefix+key+":lock", redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("cache: lock %s: %w", key, err)
	}

	return func() {
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}, nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
