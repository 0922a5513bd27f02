// Package platformer drives the platform-game engine for the terminal:
// it owns the round loop, the ending delay between rounds, the death
// animation clock, and the cell renderer.
package platformer

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "platformer"

// Game implements registry.Game on top of engine.State.
type Game struct {
	cfg    config.PlatformerConfig
	params engine.Params
	logger *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand
	state   engine.State
	err     error

	roundID   uuid.UUID
	round     int
	roundTime float64 // Simulated seconds since the round started
	ending    float64 // Remaining ending delay once the round is decided
	animClock float64 // Simulated seconds toward the next dead tile

	facing map[int]int // Last non-zero facing per actor ID

	paused   bool
	gameOver bool
	won      bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game using cfg. The config is fixed for the game's lifetime.
func New(cfg config.PlatformerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		params: ParamsFromConfig(cfg),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ParamsFromConfig converts the YAML configuration into engine constants.
func ParamsFromConfig(cfg config.PlatformerConfig) engine.Params {
	return engine.Params{
		ViewportW:       cfg.Arena.Width,
		ViewportH:       cfg.Arena.Height,
		PlayerXSpeed:    cfg.Physics.PlayerXSpeed,
		Gravity:         cfg.Physics.Gravity,
		JumpSpeed:       cfg.Physics.JumpSpeed,
		ActorSize:       engine.V(cfg.Actors.Width, cfg.Actors.Height),
		MinEnemies:      cfg.Enemies.MinCount,
		MaxEnemies:      cfg.Enemies.MaxCount,
		EnemyFloorGap:   cfg.Enemies.FloorGap,
		EnemySpawnShift: cfg.Enemies.SpawnShift,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.startSession()
}

func (g *Game) startSession() {
	g.round = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.err = nil
	g.startRound()
}

// startRound spawns a fresh roster. Rounds share the session RNG so a
// seed fixes the whole session.
func (g *Game) startRound() {
	st, err := engine.Start(g.params, g.rng)
	if err != nil {
		g.err = err
		g.gameOver = true
		g.logger.Error("cannot start round", "error", err)
		return
	}

	g.state = st
	g.round++
	g.roundID = uuid.New()
	g.roundTime = 0
	g.ending = 0
	g.animClock = 0
	g.facing = make(map[int]int, len(st.Actors()))

	g.logger.Debug("round started",
		"round", g.round,
		"id", g.roundID,
		"enemies", st.Enemies(),
	)
}

// timeStep is the simulated duration of one tick.
func (g *Game) timeStep() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return math.Min(1/float64(rate), g.cfg.Round.MaxTimeStep)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(g.runtime)
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) && g.err == nil {
			g.startSession()
			return core.StepResult{State: g.State(), Events: []core.Event{core.EventRoundStarted}}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.timeStep()
	var events []core.Event

	if g.state.Status() == engine.Playing {
		events = g.stepRound(dt, in)
	} else {
		events = g.stepEnding(dt)
	}
	g.stepAnimation(dt)

	return core.StepResult{State: g.State(), Events: events}
}

// stepRound runs one engine step and reports what it decided.
func (g *Game) stepRound(dt float64, in core.InputFrame) []core.Event {
	before := g.state.Enemies()
	next, err := g.state.Step(dt, EngineInput(in))
	if err != nil {
		g.logger.Error("step rejected", "round", g.round, "dt", dt, "error", err)
		return nil
	}
	g.state = next
	g.roundTime += dt
	g.trackFacing()

	var events []core.Event
	if next.Enemies() < before {
		events = append(events, core.EventEnemyStomped)
	}

	switch next.Status() {
	case engine.Won:
		events = append(events, core.EventRoundWon)
	case engine.Lost:
		events = append(events, core.EventRoundLost)
	default:
		return events
	}

	g.ending = g.cfg.Round.EndingDelay
	g.logger.Info("round ended",
		"round", g.round,
		"id", g.roundID,
		"status", next.Status(),
		"duration", roundDuration(g.roundTime),
	)
	return events
}

// stepEnding counts down the delay after a decided round, then restarts
// or ends the session.
func (g *Game) stepEnding(dt float64) []core.Event {
	g.ending -= dt
	if g.ending > 0 {
		return nil
	}

	if g.state.Status() == engine.Won && g.cfg.Round.StopOnWin {
		g.gameOver = true
		g.won = true
		g.logger.Info("session won", "rounds", g.round)
		return []core.Event{core.EventGameOver}
	}

	g.startRound()
	if g.gameOver {
		return []core.Event{core.EventGameOver}
	}
	return []core.Event{core.EventRoundStarted}
}

// stepAnimation advances dead tiles on a fixed cadence of simulated time.
func (g *Game) stepAnimation(dt float64) {
	interval := g.cfg.Animation.FrameInterval
	g.animClock += dt
	for g.animClock >= interval {
		g.animClock -= interval
		g.state = g.state.AdvanceDeadTiles(len(g.cfg.Animation.DeadTiles))
	}
}

// trackFacing remembers the last horizontal direction of every live actor.
func (g *Game) trackFacing() {
	for _, a := range g.state.Actors() {
		if f := a.Facing(); f != 0 {
			g.facing[a.ID] = f
		}
	}
}

// facingOf returns the remembered facing, defaulting players to the right
// and enemies to the left as they spawn.
func (g *Game) facingOf(a engine.Actor) int {
	if f, ok := g.facing[a.ID]; ok {
		return f
	}
	if a.Kind == engine.KindEnemy {
		return -1
	}
	return 1
}

// EngineInput maps platform actions to engine control flags.
func EngineInput(in core.InputFrame) engine.Input {
	var flags engine.Input
	if in.Has(core.ActionLeft) {
		flags |= engine.InputLeft
	}
	if in.Has(core.ActionRight) {
		flags |= engine.InputRight
	}
	if in.Has(core.ActionJump) {
		flags |= engine.InputJump
	}
	return flags
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Engine returns the engine state of the current round.
func (g *Game) Engine() engine.State {
	return g.state
}

// RoundID identifies the current round in logs.
func (g *Game) RoundID() uuid.UUID {
	return g.roundID
}

// Err returns the error that stopped the session, if any.
func (g *Game) Err() error {
	return g.err
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(config.DefaultPlatformerConfig())
	})
}
