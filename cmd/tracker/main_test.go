package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := fmt.Sprintf(`app:
  home-currency: INR
rates:
  base-url: http://127.0.0.1:1/
  timeout-seconds: 1
  cache:
    driver: file
    path: %s
storage:
  driver: sqlite3
  path: %s
`, filepath.Join(dir, "rates.json"), filepath.Join(dir, "expenses.db"))
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	return path
}

func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func Test_OnCategoryList_ShouldShowSeededDefaults(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, cfg, "category", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Bills")
}

func Test_OnAddThenList_ShouldShowExpense(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, cfg, "add", "12.5", "--category", "Food", "--date", "2025-03-01", "--time", "09:15", "--note", "lunch")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved")

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "lunch")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "2025-03-01")
	assert.Contains(t, out, "09:15")
}

func Test_OnConvertHomeCurrency_ShouldNotCallRateService(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, cfg, "convert", "50", "inr")
	require.NoError(t, err)
	assert.Contains(t, out, "50.00 INR")
}

func Test_OnConvertWithoutRates_ShouldFail(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "convert", "50", "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Currency conversion failed")
}

func Test_OnDeleteCategoryInUse_ShouldFail(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "add", "5", "--category", "Transport")
	require.NoError(t, err)

	_, err = run(t, cfg, "category", "delete", "Transport")
	assert.Error(t, err)

	_, err = run(t, cfg, "category", "delete", "Bills")
	assert.NoError(t, err)
}

func Test_OnEditUnknownID_ShouldCreateExpense(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, cfg, "edit", "42", "--amount", "7", "--date", "2025-03-04", "--category", "Food", "--note", "tea")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated #42")

	_, err = run(t, cfg, "edit", "42", "--note", "green tea")
	require.NoError(t, err)

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "green tea")
	assert.Contains(t, out, "7.00")

	_, err = run(t, cfg, "delete", "42")
	require.NoError(t, err)

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses yet")
}
