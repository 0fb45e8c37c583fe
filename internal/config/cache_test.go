package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetYAML = `
scenarios:
  - name: reference
    kind: duration
    balance: 1000000
    expense: 80000
    rate: 0.05
`

func TestCache_ReusesUntilFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetYAML), 0o644))

	c := NewCache(time.Hour)
	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())

	changed := presetYAML + "    year_cap: 50\n"
	require.NoError(t, os.WriteFile(path, []byte(changed), 0o644))
	third, err := c.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 50, third.Scenarios[0].YearCap)
}

func TestCache_Expiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetYAML), 0o644))

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute)
	c.now = func() time.Time { return now }

	first, err := c.Load(path)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	second, err := c.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, c.Len(), "expired entry replaced")

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCache_Errors(t *testing.T) {
	c := NewCache(0)
	_, err := c.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	var nilCache *Cache
	_, err = nilCache.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCacheTTLFromEnv(t *testing.T) {
	t.Setenv("SCENARIO_CACHE_TTL", "30s")
	assert.Equal(t, 30*time.Second, CacheTTLFromEnv())

	t.Setenv("SCENARIO_CACHE_TTL", "soon")
	assert.Equal(t, DefaultCacheTTL, CacheTTLFromEnv())
}
