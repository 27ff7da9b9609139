package component

import "fmt"

// AsteroidSize is the split tier of an asteroid.
type AsteroidSize uint8

const (
	AsteroidLarge AsteroidSize = iota
	AsteroidMedium
	AsteroidSmall
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidLarge:
		return "large"
	case AsteroidMedium:
		return "medium"
	case AsteroidSmall:
		return "small"
	}
	return "unknown"
}

// ParseAsteroidSize converts "large", "medium" or "small" to a size.
func ParseAsteroidSize(s string) (AsteroidSize, error) {
	switch s {
	case "large":
		return AsteroidLarge, nil
	case "medium":
		return AsteroidMedium, nil
	case "small":
		return AsteroidSmall, nil
	}
	return 0, fmt.Errorf("unknown asteroid size %q", s)
}

// UnmarshalText lets sizes appear by name in data files.
func (s *AsteroidSize) UnmarshalText(text []byte) error {
	v, err := ParseAsteroidSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Asteroid marks an entity as an asteroid and records its tier.
type Asteroid struct {
	Size AsteroidSize
}

// Bullet marks a projectile. It has no fields.
type Bullet struct{}

func (Asteroid) Tag() Tag { return TagAsteroid }
func (Bullet) Tag() Tag   { return TagBullet }
