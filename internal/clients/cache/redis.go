package cache

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/logger"
)

type redisConfig interface {
	Addr() string
}

type RedisCache struct {
	client *redis.Client
	key    string
}

func NewRedisCache(config redisConfig, home string) (*RedisCache, error) {
	logger.Info("redis address", zap.String("addr", config.Addr()))
	client := redis.NewClient(&redis.Options{Addr: config.Addr()})
	rc := &RedisCache{client: client, key: formatKey(home)}
	return rc, client.Ping(context.Background()).Err()
}

func (rc *RedisCache) Save(ctx context.Context, table currency.Table) error {
	logger.Info("cache rates", zap.String("key", rc.key))
	raw, err := encode(table)
	if err != nil {
		return err
	}
	return errors.Wrap(rc.client.Set(ctx, rc.key, raw, 0).Err(), "set rates")
}

func (rc *RedisCache) Load(ctx context.Context) (currency.Table, error) {
	logger.Info("get rates from cache", zap.String("key", rc.key))
	raw, err := rc.client.Get(ctx, rc.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "get rates")
	}
	return decode(raw)
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
