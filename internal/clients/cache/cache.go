package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/currency"
)

const (
	DriverFile      = "file"
	DriverMemcached = "memcached"
	DriverRedis     = "redis"

	keyPrefix = "rates:"
)

// ErrMiss means nothing has been cached yet.
var ErrMiss = errors.New("rates not cached")

// RatesCache keeps the last successfully fetched home-currency table.
// Save overwrites whatever was stored before.
type RatesCache interface {
	Save(ctx context.Context, table currency.Table) error
	Load(ctx context.Context) (currency.Table, error)
}

type config interface {
	Driver() string
	Path() string
	Hosts() []string
	Addr() string
}

// New picks the backend named by the config. Tables are kept per home
// currency so switching home currency never serves stale conversions.
func New(config config, home string) (RatesCache, error) {
	switch config.Driver() {
	case DriverFile, "":
		return NewFileCache(config.Path()), nil
	case DriverMemcached:
		mc, err := NewMemcache(config, home)
		if err != nil {
			return nil, errors.Wrap(err, "connect memcached")
		}
		return mc, nil
	case DriverRedis:
		rc, err := NewRedisCache(config, home)
		if err != nil {
			return nil, errors.Wrap(err, "connect redis")
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", config.Driver())
	}
}

func formatKey(home string) string {
	return keyPrefix + currency.Normalize(home)
}

func encode(table currency.Table) ([]byte, error) {
	raw, err := json.Marshal(table)
	if err != nil {
		return nil, errors.Wrap(err, "encode rates")
	}
	return raw, nil
}

func decode(raw []byte) (currency.Table, error) {
	var table currency.Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, errors.Wrap(err, "decode rates")
	}
	if table == nil {
		return nil, ErrMiss
	}
	return table, nil
}
