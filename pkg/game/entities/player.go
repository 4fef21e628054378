package entities

import (
	"time"

	"mazeworld/pkg/engine/world"
)

// Player is the controllable entity. Position is a pixel rectangle; everything else is per session.
type Player struct {
	Rect      world.Rect
	Facing    world.Vec2 // unit vector, never zero
	Health    int
	MaxHealth int

	LightOn    bool
	Battery    float64
	MaxBattery float64

	lastHit time.Duration
	hasHit  bool
}

// NewPlayer places a fresh player centred in the start cell, light on, full health and battery
func NewPlayer(start world.Coord, cellSize, travelWidth float64, maxHealth int, maxBattery float64) *Player {
	return &Player{
		Rect:       world.CenteredIn(start, cellSize, travelWidth),
		Facing:     world.Down,
		Health:     maxHealth,
		MaxHealth:  maxHealth,
		LightOn:    true,
		Battery:    maxBattery,
		MaxBattery: maxBattery,
	}
}

// IsDead returns true once health is exhausted
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// Face turns the player toward v. A zero vector leaves the facing unchanged.
func (p *Player) Face(v world.Vec2) {
	if v.IsZero() {
		return
	}
	p.Facing = v.Normalized()
}

// CanBeHit returns true if the invulnerability window since the last hit has passed
func (p *Player) CanBeHit(now, invulnerability time.Duration) bool {
	last, ok := p.LastHit()
	if !ok {
		return true
	}
	return now-last >= invulnerability
}

// Damage subtracts amount from health, clamped at zero, and records the hit time
func (p *Player) Damage(amount int, now time.Duration) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.lastHit = now
	p.hasHit = true
}

// LastHit returns the world time of the last hit and whether there was one
func (p *Player) LastHit() (time.Duration, bool) {
	return p.lastHit, p.hasHit
}

// ToggleLight flips the light. It will not switch on with a flat battery.
func (p *Player) ToggleLight() bool {
	if !p.LightOn && p.Battery <= 0 {
		return false
	}
	p.LightOn = !p.LightOn
	return true
}

// UpdateBattery drains or recharges the light over dt and forces it off when empty.
// It returns true if the light was forced off this call.
func (p *Player) UpdateBattery(dt time.Duration, drainPerSec, rechargePerSec float64) bool {
	secs := dt.Seconds()
	if p.LightOn {
		p.Battery -= drainPerSec * secs
		if p.Battery <= 0 {
			p.Battery = 0
			p.LightOn = false
			return true
		}
		return false
	}
	p.Battery += rechargePerSec * secs
	if p.Battery > p.MaxBattery {
		p.Battery = p.MaxBattery
	}
	return false
}

// MoveTo centres the player in cell c, keeping its size
func (p *Player) MoveTo(c world.Coord, cellSize float64) {
	p.Rect = world.CenteredIn(c, cellSize, p.Rect.W)
}
