package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Round    int  // 1-based number of the round in progress
	GameOver bool // Whether the session has ended
	Won      bool // Whether the session ended with a won round
	Paused   bool // Whether the game is paused
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventNone Event = iota
	EventRoundStarted
	EventRoundWon
	EventRoundLost
	EventEnemyStomped
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventRoundStarted:
		return "RoundStarted"
	case EventRoundWon:
		return "RoundWon"
	case EventRoundLost:
		return "RoundLost"
	case EventEnemyStomped:
		return "EnemyStomped"
	case EventGameOver:
		return "GameOver"
	default:
		return "None"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
