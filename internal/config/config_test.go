package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asteroids.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200*time.Millisecond, cfg.Ship.ShootCooldown.Duration)
	assert.Equal(t, 2*time.Second, cfg.Ship.Invulnerability.Duration)
	assert.Less(t, cfg.Ship.ColliderRadius, cfg.Ship.Size)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
[arena]
width = 1024

[ship]
shoot_cooldown = "150ms"

[waves]
max_count = 6
script = "scripts/waves.lua"

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Arena.Width)
	assert.Equal(t, 600.0, cfg.Arena.Height, "untouched keys keep defaults")
	assert.Equal(t, 150*time.Millisecond, cfg.Ship.ShootCooldown.Duration)
	assert.Equal(t, 6, cfg.Waves.MaxCount)
	assert.Equal(t, 3, cfg.Waves.BaseCount)
	assert.Equal(t, "scripts/waves.lua", cfg.Waves.Script)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, `
[ship]
friction = 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "friction")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeFile(t, `
[bullet]
ttl = "soon"
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
