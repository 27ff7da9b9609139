package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/asteroids/internal/component"
)

func TestDefaultAsteroidTable(t *testing.T) {
	tbl := DefaultAsteroidTable()
	require.Equal(t, 3, tbl.Count())

	large := tbl.Tier(component.AsteroidLarge)
	assert.Equal(t, 30.0, large.Radius)
	assert.Equal(t, 10.0, large.SplitOffset)
	require.NotNil(t, large.SplitInto)
	assert.Equal(t, component.AsteroidMedium, *large.SplitInto)

	medium := tbl.Tier(component.AsteroidMedium)
	assert.Equal(t, 5.0, medium.SplitOffset)
	require.NotNil(t, medium.SplitInto)
	assert.Equal(t, component.AsteroidSmall, *medium.SplitInto)

	assert.Nil(t, tbl.Tier(component.AsteroidSmall).SplitInto)
}

func TestLoadAsteroidTableErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := LoadAsteroidTable(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadAsteroidTable(write("badsize.yaml", "asteroids:\n  - size: huge\n    radius: 5\n"))
	assert.Error(t, err)

	_, err = LoadAsteroidTable(write("partial.yaml", "asteroids:\n  - size: large\n    radius: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing tier")

	_, err = LoadAsteroidTable(write("radius.yaml", "asteroids:\n  - size: large\n    radius: 0\n"))
	assert.Error(t, err)
}

func TestLoadAsteroidTableFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
asteroids:
  - {size: large, radius: 40, split_into: medium, split_offset: 12, min_speed: 1, max_speed: 2}
  - {size: medium, radius: 25, split_into: small, split_offset: 6, min_speed: 1, max_speed: 2}
  - {size: small, radius: 12, min_speed: 1, max_speed: 2}
`), 0o644))

	tbl, err := LoadAsteroidTable(p)
	require.NoError(t, err)
	assert.Equal(t, 40.0, tbl.Tier(component.AsteroidLarge).Radius)
	assert.Equal(t, 12.0, tbl.Tier(component.AsteroidLarge).SplitOffset)
}
