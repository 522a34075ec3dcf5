package cache

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/logger"
)

type memcacheConfig interface {
	Hosts() []string
}

type MemcacheClient struct {
	client *memcache.Client
	key    string
}

func NewMemcache(config memcacheConfig, home string) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, key: formatKey(home)}, mc.Ping()
}

func (mc *MemcacheClient) Save(_ context.Context, table currency.Table) error {
	logger.Info("cache rates", zap.String("key", mc.key))
	raw, err := encode(table)
	if err != nil {
		return err
	}
	return mc.client.Set(&memcache.Item{
		Key:   mc.key,
		Value: raw,
	})
}

func (mc *MemcacheClient) Load(_ context.Context) (currency.Table, error) {
	logger.Info("get rates from cache", zap.String("key", mc.key))
	item, err := mc.client.Get(mc.key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return decode(item.Value)
}
