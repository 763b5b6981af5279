package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "HISTORY_CAP", "ANALYSIS_TIMEOUT_MS", "BATCH_CONCURRENCY", "RANDOM_SEED", "RESTORE_MAX_BYTES"} {
		t.Setenv(k, "")
	}

	assert.Equal(t, 8080, ServerPort())
	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, 100.0, RateLimitRPS())
	assert.Equal(t, 20, RateLimitBurst())
	assert.Equal(t, "info", LogLevel())
	assert.Zero(t, HistoryCap())
	assert.Equal(t, 2*time.Second, AnalysisTimeout())
	assert.Equal(t, 4, BatchConcurrency())
	assert.Zero(t, RandomSeed())
	assert.Equal(t, int64(64<<20), RestoreMaxBytes())
}

func TestOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HISTORY_CAP", "250")
	t.Setenv("ANALYSIS_TIMEOUT_MS", "150")
	t.Setenv("BATCH_CONCURRENCY", "-1")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("RESTORE_MAX_BYTES", "4096")

	assert.Equal(t, ":9090", ServerAddr())
	assert.Equal(t, 250, HistoryCap())
	assert.Equal(t, 150*time.Millisecond, AnalysisTimeout())
	assert.Equal(t, 4, BatchConcurrency())
	assert.Equal(t, uint64(42), RandomSeed())
	assert.Equal(t, int64(4096), RestoreMaxBytes())
}

func TestLoadReadsEnvFileAndSecret(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(env, []byte("LOGOS_TEST_VALUE=plain\n"), 0o600))
	require.NoError(t, os.WriteFile(env+".secret", []byte("LOGOS_TEST_SECRET=hidden\n"), 0o600))

	t.Setenv("LOGOS_ENV", env)
	t.Setenv("LOGOS_TEST_VALUE", "")
	t.Setenv("LOGOS_TEST_SECRET", "")
	os.Unsetenv("LOGOS_TEST_VALUE")
	os.Unsetenv("LOGOS_TEST_SECRET")

	require.NoError(t, Load())
	assert.Equal(t, "plain", os.Getenv("LOGOS_TEST_VALUE"))
	assert.Equal(t, "hidden", os.Getenv("LOGOS_TEST_SECRET"))
}
