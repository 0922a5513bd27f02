// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Arena     PlatformerArena     `yaml:"arena"`
	Physics   PlatformerPhysics   `yaml:"physics"`
	Actors    PlatformerActors    `yaml:"actors"`
	Enemies   PlatformerEnemies   `yaml:"enemies"`
	Round     PlatformerRound     `yaml:"round"`
	Animation PlatformerAnimation `yaml:"animation"`
	Input     PlatformerInput     `yaml:"input"`
}

// PlatformerArena defines the playable rectangle in arena units.
type PlatformerArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerPhysics defines movement constants (units per second).
type PlatformerPhysics struct {
	PlayerXSpeed float64 `yaml:"player_x_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"`
}

// PlatformerActors defines the bounding box shared by all actors.
type PlatformerActors struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerEnemies defines enemy spawning.
type PlatformerEnemies struct {
	MinCount   int     `yaml:"min_count"`
	MaxCount   int     `yaml:"max_count"`
	FloorGap   float64 `yaml:"floor_gap"`   // Gap between enemy feet and the floor
	SpawnShift float64 `yaml:"spawn_shift"` // Leftward shift of the spawn band
}

// PlatformerRound defines how the driver runs rounds.
type PlatformerRound struct {
	MaxTimeStep float64 `yaml:"max_time_step"` // Seconds; longer frames are clamped
	EndingDelay float64 `yaml:"ending_delay"`  // Seconds shown after a round ends
	StopOnWin   bool    `yaml:"stop_on_win"`   // End the session after a won round
}

// PlatformerAnimation defines the death animation cadence.
type PlatformerAnimation struct {
	FrameInterval float64 `yaml:"frame_interval"` // Seconds per dead tile
	DeadTiles     []int   `yaml:"dead_tiles"`     // Frame index per dead tile step
}

// PlatformerInput defines terminal input handling.
type PlatformerInput struct {
	// Hold is how long a key press counts as held. Terminals report
	// presses and auto-repeat but no releases.
	Hold time.Duration `yaml:"hold"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks the values the engine and driver cannot work around.
// Arena fit of spawn positions is checked by the engine itself.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Physics.PlayerXSpeed <= 0 || c.Physics.Gravity <= 0 || c.Physics.JumpSpeed <= 0:
		return fmt.Errorf("%w: physics constants must be positive", ErrInvalid)
	case c.Actors.Width <= 0 || c.Actors.Height <= 0:
		return fmt.Errorf("%w: actor size %vx%v", ErrInvalid, c.Actors.Width, c.Actors.Height)
	case c.Enemies.MinCount < 1 || c.Enemies.MaxCount < c.Enemies.MinCount:
		return fmt.Errorf("%w: enemy count range [%d, %d]", ErrInvalid, c.Enemies.MinCount, c.Enemies.MaxCount)
	case c.Round.MaxTimeStep <= 0:
		return fmt.Errorf("%w: max_time_step must be positive", ErrInvalid)
	case c.Round.EndingDelay < 0:
		return fmt.Errorf("%w: ending_delay must not be negative", ErrInvalid)
	case c.Animation.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalid)
	case len(c.Animation.DeadTiles) == 0:
		return fmt.Errorf("%w: dead_tiles must not be empty", ErrInvalid)
	case c.Input.Hold <= 0:
		return fmt.Errorf("%w: input hold must be positive", ErrInvalid)
	}
	return nil
}
