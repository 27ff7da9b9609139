package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Arena    ArenaConfig    `toml:"arena"`
	Ship     ShipConfig     `toml:"ship"`
	Bullet   BulletConfig   `toml:"bullet"`
	Waves    WavesConfig    `toml:"waves"`
	Scoring  ScoringConfig  `toml:"scoring"`
	Loop     LoopConfig     `toml:"loop"`
	Data     DataConfig     `toml:"data"`
	Logging  LoggingConfig  `toml:"logging"`
	Terminal TerminalConfig `toml:"terminal"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type ShipConfig struct {
	Size            float64  `toml:"size"`            // render size
	ColliderRadius  float64  `toml:"collider_radius"` // smaller than size on purpose
	MaxHealth       int      `toml:"max_health"`
	RotationSpeed   float64  `toml:"rotation_speed"` // radians per second
	ThrustForce     float64  `toml:"thrust_force"`   // units per second squared
	Friction        float64  `toml:"friction"`       // velocity factor applied every frame
	ShootCooldown   Duration `toml:"shoot_cooldown"`
	Invulnerability Duration `toml:"invulnerability"`
	Color           string   `toml:"color"`
}

type BulletConfig struct {
	Speed  float64  `toml:"speed"`
	TTL    Duration `toml:"ttl"`
	Radius float64  `toml:"radius"`
	Color  string   `toml:"color"`
}

type WavesConfig struct {
	BaseCount   int     `toml:"base_count"`
	MaxCount    int     `toml:"max_count"`
	SpawnRadius float64 `toml:"spawn_radius"`
	Script      string  `toml:"script"` // optional Lua file defining wave_size
}

type ScoringConfig struct {
	KillAward int `toml:"kill_award"`
}

type LoopConfig struct {
	TickRate Duration `toml:"tick_rate"`
}

type DataConfig struct {
	AsteroidTable string `toml:"asteroid_table"` // empty = embedded table
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`
}

type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`  // world units per column
	CellHeight float64 `toml:"cell_height"` // world units per row
}

// Duration decodes TOML strings such as "200ms" or "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads path on top of the defaults. A missing file is an error; use
// Default when no file is wanted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to the defaults when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Default() *Config {
	return defaults()
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	case c.Ship.Friction <= 0 || c.Ship.Friction > 1:
		return fmt.Errorf("ship friction must be in (0,1], got %g", c.Ship.Friction)
	case c.Ship.MaxHealth < 1:
		return fmt.Errorf("ship max_health must be at least 1, got %d", c.Ship.MaxHealth)
	case c.Waves.MaxCount < 1:
		return fmt.Errorf("waves max_count must be at least 1, got %d", c.Waves.MaxCount)
	case c.Waves.BaseCount < 0:
		return fmt.Errorf("waves base_count must not be negative, got %d", c.Waves.BaseCount)
	case c.Loop.TickRate.Duration <= 0:
		return fmt.Errorf("loop tick_rate must be positive, got %s", c.Loop.TickRate.Duration)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("terminal cell size must be positive")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Size:            10,
			ColliderRadius:  8,
			MaxHealth:       3,
			RotationSpeed:   4.0,
			ThrustForce:     200,
			Friction:        0.99,
			ShootCooldown:   Duration{200 * time.Millisecond},
			Invulnerability: Duration{2 * time.Second},
			Color:           "white",
		},
		Bullet: BulletConfig{
			Speed:  400,
			TTL:    Duration{time.Second},
			Radius: 2,
			Color:  "yellow",
		},
		Waves: WavesConfig{
			BaseCount:   3,
			MaxCount:    12,
			SpawnRadius: 250,
		},
		Scoring: ScoringConfig{
			KillAward: 10,
		},
		Loop: LoopConfig{
			TickRate: Duration{16 * time.Millisecond},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "asteroids.log",
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}
