package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Arena: PlatformerArena{
			Width:  600,
			Height: 400,
		},
		Physics: PlatformerPhysics{
			PlayerXSpeed: 100,
			Gravity:      428,
			JumpSpeed:    243,
		},
		Actors: PlatformerActors{
			Width:  24,
			Height: 30,
		},
		Enemies: PlatformerEnemies{
			MinCount:   1,
			MaxCount:   7,
			FloorGap:   3,
			SpawnShift: 100,
		},
		Round: PlatformerRound{
			MaxTimeStep: 0.1,
			EndingDelay: 1.5,
			StopOnWin:   true,
		},
		Animation: PlatformerAnimation{
			FrameInterval: 0.06,
			DeadTiles:     []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 3, 4, 5, 6, 7},
		},
		Input: PlatformerInput{
			Hold: 180 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
