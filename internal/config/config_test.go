package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"HTTP_ADDR", "FIXED_LOGO", "LOGO_POOL", "SESSION_SECRET", "SESSION_TTL_HOURS", "SHUFFLE_SEED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "/img/logo.png", cfg.FixedLogo)
	assert.Equal(t, 168, cfg.SessionTTLHours)
	assert.Equal(t, uint32(0), cfg.ShuffleSeed)
	assert.True(t, cfg.WeakSecret())
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIXED_LOGO", "/brand.svg")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL_HOURS", "-4")
	t.Setenv("SHUFFLE_SEED", "99")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.Equal(t, "/brand.svg", cfg.FixedLogo)
	assert.False(t, cfg.WeakSecret())
	assert.Equal(t, 1, cfg.SessionTTLHours)
	assert.Equal(t, uint32(99), cfg.ShuffleSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOGO_POOL", "")
	t.Setenv("HTTP_ADDR", ":9999")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("# pool\nLOGO_POOL=\"a,b,c\"\nHTTP_ADDR=:1\n"), 0o644))

	cfg := Load()
	assert.Equal(t, "a,b,c", cfg.LogoPool)
	assert.Equal(t, ":9999", cfg.HTTPAddr, "environment wins over .env")
}

func TestLoad_ShuffleSeedOutOfRange(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, val := range []string{"-1", "4294967296", "seed"} {
		t.Setenv("SHUFFLE_SEED", val)
		assert.Equal(t, uint32(0), Load().ShuffleSeed, "SHUFFLE_SEED=%s", val)
	}

	t.Setenv("SHUFFLE_SEED", "4294967295")
	assert.Equal(t, uint32(4294967295), Load().ShuffleSeed)
}
