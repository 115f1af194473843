// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzytwin/config"
)

// clearEnv unsets every config variable for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvAddr, config.EnvDebug, config.EnvMaxVertices, config.EnvParallel} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAddr, "127.0.0.1:8080")
	t.Setenv(config.EnvDebug, "true")
	t.Setenv(config.EnvMaxVertices, "6")
	t.Setenv(config.EnvParallel, "4")

	c, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{Addr: "127.0.0.1:8080", Debug: true, MaxVertices: 6, Parallel: 4}, c)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("FUZZYTWIN_PARALLEL=3\nFUZZYTWIN_MAX_VERTICES=5\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvParallel)
		_ = os.Unsetenv(config.EnvMaxVertices)
	})

	c, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Parallel)
	assert.Equal(t, 5, c.MaxVertices)
	assert.Equal(t, config.DefaultAddr, c.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvParallel, "0")
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	bad := []config.Config{
		{Addr: "", MaxVertices: 7, Parallel: 1},
		{Addr: ":1", MaxVertices: -1, Parallel: 1},
		{Addr: ":1", MaxVertices: 65, Parallel: 1},
	}
	for _, c := range bad {
		require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FT_TEST_INT", "x12")
	assert.Equal(t, 9, config.GetEnvInt("FT_TEST_INT", 9))
	t.Setenv("FT_TEST_BOOL", "maybe")
	assert.True(t, config.GetEnvBool("FT_TEST_BOOL", true))
	t.Setenv("FT_TEST_BOOL", "0")
	assert.False(t, config.GetEnvBool("FT_TEST_BOOL", true))
	assert.Equal(t, "d", config.GetEnvString("FT_TEST_UNSET_KEY", "d"))
}
