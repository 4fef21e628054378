package entities

import (
	"testing"
	"time"

	"mazeworld/pkg/engine/world"
)

func TestNewPlayer_CentredInStart(t *testing.T) {
	p := NewPlayer(world.Coord{X: 2, Y: 1}, 20, 12, 100, 50)
	want := world.Rect{X: 44, Y: 24, W: 12, H: 12}
	if p.Rect != want {
		t.Errorf("Rect = %+v, want %+v", p.Rect, want)
	}
	if p.Facing != world.Down {
		t.Errorf("Facing = %+v, want down", p.Facing)
	}
	if !p.LightOn || p.Health != 100 || p.Battery != 50 {
		t.Errorf("fresh player = %+v", p)
	}
}

func TestPlayer_FaceIgnoresZero(t *testing.T) {
	p := NewPlayer(world.Coord{}, 20, 12, 100, 50)
	p.Face(world.Vec2{})
	if p.Facing != world.Down {
		t.Errorf("zero vector changed facing to %+v", p.Facing)
	}
	p.Face(world.Vec2{X: -3, Y: 0})
	if p.Facing != (world.Vec2{X: -1, Y: 0}) {
		t.Errorf("Facing = %+v, want (-1,0)", p.Facing)
	}
}

func TestPlayer_Invulnerability(t *testing.T) {
	p := NewPlayer(world.Coord{}, 20, 12, 100, 50)
	window := time.Second
	if !p.CanBeHit(0, window) {
		t.Fatal("fresh player cannot be hit")
	}
	p.Damage(30, 2*time.Second)
	if p.Health != 70 {
		t.Errorf("Health = %d, want 70", p.Health)
	}
	if p.CanBeHit(2500*time.Millisecond, window) {
		t.Error("player hit again inside the invulnerability window")
	}
	if !p.CanBeHit(3*time.Second, window) {
		t.Error("player still invulnerable after the window")
	}
	p.Damage(500, 3*time.Second)
	if p.Health != 0 || !p.IsDead() {
		t.Errorf("Health = %d, IsDead = %v; want 0, true", p.Health, p.IsDead())
	}
}

func TestPlayer_Battery(t *testing.T) {
	p := NewPlayer(world.Coord{}, 20, 12, 100, 10)

	if forced := p.UpdateBattery(time.Second, 4, 2); forced || p.Battery != 6 {
		t.Fatalf("after 1s on: battery %v, forced %v", p.Battery, forced)
	}
	if forced := p.UpdateBattery(2*time.Second, 4, 2); !forced || p.LightOn || p.Battery != 0 {
		t.Fatalf("after draining: battery %v, light %v, forced %v", p.Battery, p.LightOn, forced)
	}
	if p.ToggleLight() {
		t.Error("light switched on with a flat battery")
	}
	p.UpdateBattery(10*time.Second, 4, 2)
	if p.Battery != 10 {
		t.Errorf("recharge not clamped: battery %v, want 10", p.Battery)
	}
	if !p.ToggleLight() || !p.LightOn {
		t.Error("light did not switch on after recharging")
	}
}
