// Package config holds the constructor-time settings of a maze world session.
// One Config value is built at world start and passed down explicitly; nothing reads it globally.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulation
type Config struct {
	// Maze shape
	Cols              int  `yaml:"cols"`
	Rows              int  `yaml:"rows"`
	RandomStartCorner bool `yaml:"random_start_corner"`

	// Pixel geometry used by collision
	CellSize          float64 `yaml:"cell_size"`
	EntityTravelWidth float64 `yaml:"entity_travel_width"`
	PlayerSpeed       float64 `yaml:"player_speed"` // pixels per tick

	// Special cells
	TrapDensity         float64 `yaml:"trap_density"`
	TeleporterPairCount int     `yaml:"teleporter_pair_count"`
	ButtonCount         int     `yaml:"button_count"`
	ResetCooldownMs     int     `yaml:"reset_cooldown_ms"`

	// Adversaries
	AdversaryCount      int     `yaml:"adversary_count"`
	AdversaryAggression float64 `yaml:"adversary_aggression"`
	DetectionRadius     float64 `yaml:"detection_radius"`
	AdversaryStepMs     int     `yaml:"adversary_step_ms"`

	// Visibility
	VisibleRadiusCells int `yaml:"visible_radius_cells"`
	DarkRadiusCells    int `yaml:"dark_radius_cells"`

	// Player
	MaxHealth           int     `yaml:"max_health"`
	TrapDamage          int     `yaml:"trap_damage"`
	ContactDamage       int     `yaml:"contact_damage"`
	InvulnerabilityMs   int     `yaml:"invulnerability_ms"`
	LightBatteryMax     float64 `yaml:"light_battery_max"`
	LightDrainPerSec    float64 `yaml:"light_drain_per_sec"`
	LightRechargePerSec float64 `yaml:"light_recharge_per_sec"`

	// Progress
	VictoryPoints int `yaml:"victory_points"`

	// Session
	Seed     int64  `yaml:"seed"` // 0 = time based
	TickMs   int    `yaml:"tick_ms"`
	Language string `yaml:"language"`

	// Bindings maps an action name to the key codes that trigger it.
	// Actions left out keep their default codes.
	Bindings map[string][]string `yaml:"bindings"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Cols:                24,
		Rows:                16,
		CellSize:            20,
		EntityTravelWidth:   12,
		PlayerSpeed:         4,
		TrapDensity:         0.03,
		TeleporterPairCount: 2,
		ButtonCount:         2,
		ResetCooldownMs:     5000,
		AdversaryCount:      3,
		AdversaryAggression: 0.6,
		DetectionRadius:     8,
		AdversaryStepMs:     250,
		VisibleRadiusCells:  3,
		DarkRadiusCells:     1,
		MaxHealth:           100,
		TrapDamage:          20,
		ContactDamage:       10,
		InvulnerabilityMs:   1000,
		LightBatteryMax:     100,
		LightDrainPerSec:    5,
		LightRechargePerSec: 2,
		VictoryPoints:       100,
		TickMs:              16,
		Language:            "en_GB",
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns the first violated constraint
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("maze must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	case c.CellSize <= 0:
		return errors.New("cell_size must be positive")
	case c.EntityTravelWidth <= 0 || c.EntityTravelWidth > c.CellSize:
		return fmt.Errorf("entity_travel_width must be in (0, cell_size], got %v", c.EntityTravelWidth)
	case c.PlayerSpeed < 0:
		return errors.New("player_speed must not be negative")
	case c.PlayerSpeed >= c.CellSize/2:
		return fmt.Errorf("player_speed must be below half of cell_size, got %v", c.PlayerSpeed)
	case c.TrapDensity < 0 || c.TrapDensity > 1:
		return fmt.Errorf("trap_density must be in [0, 1], got %v", c.TrapDensity)
	case c.TeleporterPairCount < 0 || c.ButtonCount < 0 || c.AdversaryCount < 0:
		return errors.New("counts must not be negative")
	case c.AdversaryAggression < 0 || c.AdversaryAggression > 1:
		return fmt.Errorf("adversary_aggression must be in [0, 1], got %v", c.AdversaryAggression)
	case c.VisibleRadiusCells < 0 || c.DarkRadiusCells < 0:
		return errors.New("visibility radii must not be negative")
	case c.MaxHealth <= 0:
		return errors.New("max_health must be positive")
	case c.ResetCooldownMs < 0 || c.InvulnerabilityMs < 0 || c.AdversaryStepMs < 0:
		return errors.New("durations must not be negative")
	case c.LightBatteryMax < 0:
		return errors.New("light_battery_max must not be negative")
	}
	return nil
}

// Margin is the gap between a cell wall and an entity travelling down the middle of the cell
func (c Config) Margin() float64 {
	return (c.CellSize - c.EntityTravelWidth) / 2
}

// ResetCooldown returns the reset-button cooldown as a duration
func (c Config) ResetCooldown() time.Duration {
	return time.Duration(c.ResetCooldownMs) * time.Millisecond
}

// Invulnerability returns the post-hit grace window
func (c Config) Invulnerability() time.Duration {
	return time.Duration(c.InvulnerabilityMs) * time.Millisecond
}

// AdversaryStep returns the minimum world time between adversary moves
func (c Config) AdversaryStep() time.Duration {
	return time.Duration(c.AdversaryStepMs) * time.Millisecond
}

// Tick returns the fixed simulation step
func (c Config) Tick() time.Duration {
	if c.TickMs <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(c.TickMs) * time.Millisecond
}

// TrapCount returns floor(cols*rows*trap_density).
// The epsilon absorbs products like 100*0.29 = 28.999...
func (c Config) TrapCount() int {
	return int(math.Floor(float64(c.Cols*c.Rows)*c.TrapDensity + 1e-9))
}
