package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/currency"
)

type testConfig struct {
	driver string
	path   string
}

func (c testConfig) Driver() string  { return c.driver }
func (c testConfig) Path() string    { return c.path }
func (c testConfig) Hosts() []string { return nil }
func (c testConfig) Addr() string    { return "" }

func Test_OnLoadBeforeSave_ShouldMiss(t *testing.T) {
	fc := NewFileCache(filepath.Join(t.TempDir(), "rates.json"))
	_, err := fc.Load(context.Background())
	assert.ErrorIs(t, err, ErrMiss)
}

func Test_OnSave_ShouldOverwritePreviousTable(t *testing.T) {
	ctx := context.Background()
	fc := NewFileCache(filepath.Join(t.TempDir(), "nested", "rates.json"))

	require.NoError(t, fc.Save(ctx, currency.Table{"USD": 80, "EUR": 90}))
	require.NoError(t, fc.Save(ctx, currency.Table{"USD": 83.5}))

	table, err := fc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, currency.Table{"USD": 83.5}, table)
}

func Test_OnCorruptFile_ShouldFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileCache(path).Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}

func Test_OnNew_ShouldPickFileDriver(t *testing.T) {
	c, err := New(testConfig{driver: DriverFile, path: filepath.Join(t.TempDir(), "r.json")}, "INR")
	require.NoError(t, err)
	assert.IsType(t, &FileCache{}, c)

	_, err = New(testConfig{driver: "etcd"}, "INR")
	assert.Error(t, err)
}

func Test_FormatKey_ShouldNormalizeHome(t *testing.T) {
	assert.Equal(t, "rates:INR", formatKey(" inr "))
}
