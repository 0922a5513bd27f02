package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by Params.Validate for unusable configurations.
var ErrInvalidParams = errors.New("engine: invalid params")

// Params holds the physics constants and arena geometry for a session.
// Values are fixed once a round starts.
type Params struct {
	ViewportW float64 // Arena width in units
	ViewportH float64 // Arena height in units

	PlayerXSpeed float64 // Horizontal player speed (units/s)
	Gravity      float64 // Downward acceleration (units/s^2)
	JumpSpeed    float64 // Upward launch speed (units/s)

	ActorSize Vec // Bounding box shared by players and enemies

	MinEnemies int // Inclusive lower bound of the spawn count
	MaxEnemies int // Inclusive upper bound of the spawn count

	EnemyFloorGap   float64 // Gap between an enemy's bottom edge and the floor at spawn
	EnemySpawnShift float64 // Leftward shift applied to the enemy spawn band
}

// DefaultParams returns the stock 600x400 arena configuration.
func DefaultParams() Params {
	return Params{
		ViewportW:       600,
		ViewportH:       400,
		PlayerXSpeed:    100,
		Gravity:         428,
		JumpSpeed:       243,
		ActorSize:       V(24, 30),
		MinEnemies:      1,
		MaxEnemies:      7,
		EnemyFloorGap:   3,
		EnemySpawnShift: 100,
	}
}

// Arena returns the containment rectangle described by the viewport.
func (p Params) Arena() Arena {
	return Arena{W: p.ViewportW, H: p.ViewportH}
}

// Validate checks that every spawn position Start can produce lies inside the arena.
func (p Params) Validate() error {
	positives := []struct {
		name string
		v    float64
	}{
		{"viewport width", p.ViewportW},
		{"viewport height", p.ViewportH},
		{"player speed", p.PlayerXSpeed},
		{"gravity", p.Gravity},
		{"jump speed", p.JumpSpeed},
		{"actor width", p.ActorSize.X()},
		{"actor height", p.ActorSize.Y()},
	}
	for _, f := range positives {
		// !(v > 0) also catches NaN
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.EnemyFloorGap <= 0 {
		return fmt.Errorf("%w: enemy floor gap must be positive, got %v", ErrInvalidParams, p.EnemyFloorGap)
	}
	if p.MinEnemies < 1 || p.MaxEnemies < p.MinEnemies {
		return fmt.Errorf("%w: enemy count range [%d, %d]", ErrInvalidParams, p.MinEnemies, p.MaxEnemies)
	}

	arena := p.Arena()
	if arena.TouchesWall(playerSpawn(p), p.ActorSize) {
		return fmt.Errorf("%w: %vx%v arena cannot hold the player spawn", ErrInvalidParams, p.ViewportW, p.ViewportH)
	}
	if arena.TouchesWall(V(0, enemySpawnY(p)), p.ActorSize) {
		return fmt.Errorf("%w: %vx%v arena cannot hold an enemy spawn", ErrInvalidParams, p.ViewportW, p.ViewportH)
	}
	return nil
}
