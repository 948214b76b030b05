package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// maxUpdateAttempts bounds optimistic retries when another client changes a
// watched key between read and write.
const maxUpdateAttempts = 10

// redisKVStore is the Redis implementation of KVStore.
// Keys are namespaced with prefix so the store can share a Redis database.
type redisKVStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisKVStore constructs a KVStore over client. Entries never expire.
func NewRedisKVStore(client redis.UniversalClient, prefix string) KVStore {
	return &redisKVStore{client: client, prefix: prefix}
}

func (s *redisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("repo.KVStore.Get: %w", err)
	}
	return v, true, nil
}

func (s *redisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("repo.KVStore.Set: %w", err)
	}
	return nil
}

// Update is a WATCH/MULTI transaction, retried while another client keeps
// changing the key first.
func (s *redisKVStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	k := s.prefix + key
	txf := func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, k).Result()
		ok := true
		if errors.Is(err, redis.Nil) {
			ok, err = false, nil
		}
		if err != nil {
			return err
		}
		next, err := fn(cur, ok)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("repo.KVStore.Update: %w", err)
		}
		return nil
	}
	return fmt.Errorf("repo.KVStore.Update: %w", redis.TxFailedErr)
}
