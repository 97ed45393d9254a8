package cache

import (
	"context"
	"errors"
	cacherepo "lolookup/api/repositories/cache"
	"lolookup/pkg/redis"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// Each failed attempt means another writer committed, so this bounds the writers, not time.
const maxUpdateRetries = 20

var ErrUpdateConflict = errors.New("key kept changing during the update")

// UpdateFunc receives the current value and returns the value to store.
type UpdateFunc func(current string, found bool) (string, error)

// KeyValueStore keeps small persistent values, like the recent searches.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	// Update applies fn atomically, no concurrent write to the key is lost.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// NewKeyValueStore uses Redis when available, the database otherwise.
func NewKeyValueStore(client *redis.RedisClient, repo cacherepo.CacheRepository) KeyValueStore {
	if client != nil {
		return &redisStore{redis: client}
	}
	return &databaseStore{repo: repo}
}

type redisStore struct {
	redis *redis.RedisClient
}

func (rs *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Values never expire.
func (rs *redisStore) Set(ctx context.Context, key string, value string) error {
	return rs.redis.Set(ctx, key, value, 0)
}

// Optimistic transaction, retried while another client changes the key.
func (rs *redisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	txf := func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		found := true
		if errors.Is(err, goredis.Nil) {
			found = false
		} else if err != nil {
			return err
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := rs.redis.Client.Watch(ctx, txf, key)
		if !errors.Is(err, goredis.TxFailedErr) {
			return err
		}
	}
	return ErrUpdateConflict
}

type databaseStore struct {
	repo cacherepo.CacheRepository
	// The database store only serves a single api process.
	mu sync.Mutex
}

func (ds *databaseStore) Get(ctx context.Context, key string) (string, bool, error) {
	return ds.repo.GetKey(ctx, key)
}

func (ds *databaseStore) Set(ctx context.Context, key string, value string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.repo.SetKey(ctx, key, value)
}

func (ds *databaseStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	current, found, err := ds.repo.GetKey(ctx, key)
	if err != nil {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}
	return ds.repo.SetKey(ctx, key, next)
}
