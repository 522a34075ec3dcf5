package cache

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/logger"
)

// FileCache stores the table as a JSON object in a single file.
type FileCache struct {
	mu   sync.Mutex
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

func (fc *FileCache) Save(_ context.Context, table currency.Table) error {
	logger.Info("cache rates", zap.String("path", fc.path), zap.Int("count", len(table)))

	raw, err := encode(table)
	if err != nil {
		return err
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if dir := filepath.Dir(fc.path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create cache dir")
		}
	}
	// write then rename, a crash mid-write must not leave half a table
	tmp := fc.path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "write cache file")
	}
	return errors.Wrap(os.Rename(tmp, fc.path), "replace cache file")
}

func (fc *FileCache) Load(_ context.Context) (currency.Table, error) {
	logger.Info("get rates from cache", zap.String("path", fc.path))

	fc.mu.Lock()
	raw, err := os.ReadFile(fc.path)
	fc.mu.Unlock()

	if os.IsNotExist(err) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "read cache file")
	}
	return decode(raw)
}
