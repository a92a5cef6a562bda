package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKey = "session:record"

// RedisStorage persists the record in redis so sessions survive
// gateway restarts. The key carries the same TTL as the record's
// expiry, so redis evicts what the manager would treat as expired.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(addr, username, password string, db int) *RedisStorage {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStorage) Store(ctx context.Context, data []byte, ttl time.Duration) error {
	return s.client.Set(ctx, redisKey, data, ttl).Err()
}

func (s *RedisStorage) Delete(ctx context.Context) error {
	return s.client.Del(ctx, redisKey).Err()
}

func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
