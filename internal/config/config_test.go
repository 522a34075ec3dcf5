package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse([]byte("telegram:\n  token: abc\n"))
	require.NoError(t, err)

	assert.Equal(t, "abc", s.Telegram().Token())
	assert.Equal(t, "INR", s.App().HomeCurrency())
	assert.Equal(t, 5, s.App().RecentLimit())
	assert.Equal(t, time.Sunday, s.App().WeekStartDay())
	assert.Equal(t, []string{"Food", "Transport", "Shopping", "Bills", "Others"}, s.App().SeedCategories())
	assert.Equal(t, "https://api.exchangeratesapi.io/v1/", s.Rates().BaseURL())
	assert.Equal(t, 10*time.Second, s.Rates().Timeout())
	assert.Equal(t, "file", s.Cache().Driver())
	assert.Equal(t, "data/inr_rates_map.json", s.Cache().Path())
	assert.Equal(t, "sqlite3", s.Storage().Driver())
	assert.Equal(t, "data/expenses.db", s.Storage().Path())
	assert.Equal(t, "expense-tracker", s.Tracing().ServiceName())
	assert.False(t, s.Tracing().Enabled())
}

func Test_Parse_ShouldReadAllSections(t *testing.T) {
	raw := `
telegram:
  token: tok
  owner-id: 42
app:
  home-currency: usd
  recent-count: 10
  week-start: Monday
  default-categories: [Rent, Food]
rates:
  base-url: http://localhost/
  access-key: key
  timeout-seconds: 3
  cache:
    driver: memcached
    hosts: [127.0.0.1:11211]
storage:
  driver: postgres
  host: db
  db: expenses
  username: user
  password: pass
metrics:
  addr: ":9090"
tracing:
  enabled: true
`
	s, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.Telegram().OwnerID())
	assert.Equal(t, "USD", s.App().HomeCurrency())
	assert.Equal(t, 10, s.App().RecentLimit())
	assert.Equal(t, time.Monday, s.App().WeekStartDay())
	assert.Equal(t, []string{"Rent", "Food"}, s.App().SeedCategories())
	assert.Equal(t, "key", s.Rates().AccessKey())
	assert.Equal(t, 3*time.Second, s.Rates().Timeout())
	assert.Equal(t, []string{"127.0.0.1:11211"}, s.Cache().Hosts())
	assert.Equal(t, "postgres", s.Storage().Driver())
	assert.Equal(t, "pass", s.Storage().Password())
	assert.Equal(t, ":9090", s.Metrics().Addr())
	assert.True(t, s.Tracing().Enabled())
}

func Test_Parse_ShouldFailOnBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("app: [unterminated"))
	assert.Error(t, err)
}

func Test_New_ShouldPreferEnvironmentSecrets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates:\n  access-key: from-file\n"), 0o600))

	t.Setenv(configFileEnv, path)
	t.Setenv(ratesAccessKeyEnv, "from-env")
	t.Setenv(telegramTokenEnv, "token-from-env")

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Rates().AccessKey())
	assert.Equal(t, "token-from-env", s.Telegram().Token())
}
