package data

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/asteroids/internal/component"
)

//go:embed asteroids.yaml
var defaultAsteroidYAML []byte

// AsteroidTier describes one asteroid size.
type AsteroidTier struct {
	Size        component.AsteroidSize  `yaml:"size"`
	Radius      float64                 `yaml:"radius"`
	SplitInto   *component.AsteroidSize `yaml:"split_into"` // nil = destroyed without children
	SplitOffset float64                 `yaml:"split_offset"`
	MinSpeed    float64                 `yaml:"min_speed"`
	MaxSpeed    float64                 `yaml:"max_speed"`
	Color       string                  `yaml:"color"`
}

type asteroidFile struct {
	Asteroids []AsteroidTier `yaml:"asteroids"`
}

// AsteroidTable holds every asteroid tier indexed by size.
type AsteroidTable struct {
	tiers map[component.AsteroidSize]AsteroidTier
}

// Tier returns the tier for size. The table is validated on load, so all
// three sizes are present.
func (t *AsteroidTable) Tier(size component.AsteroidSize) AsteroidTier {
	return t.tiers[size]
}

// Count returns the number of tiers.
func (t *AsteroidTable) Count() int {
	return len(t.tiers)
}

// LoadAsteroidTable loads asteroid tiers from a YAML file.
func LoadAsteroidTable(path string) (*AsteroidTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asteroid table: %w", err)
	}
	return parseAsteroidTable(raw)
}

// DefaultAsteroidTable returns the built-in tiers.
func DefaultAsteroidTable() *AsteroidTable {
	t, err := parseAsteroidTable(defaultAsteroidYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded asteroid table: %v", err))
	}
	return t
}

func parseAsteroidTable(raw []byte) (*AsteroidTable, error) {
	var f asteroidFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse asteroid table: %w", err)
	}
	t := &AsteroidTable{tiers: make(map[component.AsteroidSize]AsteroidTier, len(f.Asteroids))}
	for _, tier := range f.Asteroids {
		if tier.Radius <= 0 {
			return nil, fmt.Errorf("asteroid tier %s: radius must be positive", tier.Size)
		}
		if tier.MinSpeed > tier.MaxSpeed {
			return nil, fmt.Errorf("asteroid tier %s: min_speed > max_speed", tier.Size)
		}
		if tier.SplitInto != nil && *tier.SplitInto == tier.Size {
			return nil, fmt.Errorf("asteroid tier %s: splits into itself", tier.Size)
		}
		t.tiers[tier.Size] = tier
	}
	for _, size := range []component.AsteroidSize{component.AsteroidLarge, component.AsteroidMedium, component.AsteroidSmall} {
		if _, ok := t.tiers[size]; !ok {
			return nil, fmt.Errorf("asteroid table: missing tier %s", size)
		}
	}
	return t, nil
}
