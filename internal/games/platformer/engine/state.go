// Package engine implements the platformer simulation: actor physics, arena
// containment, actor collisions and the round status state machine.
//
// The engine is a pure function of (state, time step, input flags). It owns
// no clock and never clamps the time step: drivers are expected to clamp it
// (0.1s is a safe bound), because a large step can carry an actor past
// another actor without the overlap ever being observed.
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidTimeStep is returned by Step for non-positive or non-finite steps.
var ErrInvalidTimeStep = errors.New("engine: invalid time step")

// Status is the outcome of a round.
type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a round. Step returns a new State and
// never modifies the receiver or slices it handed out.
type State struct {
	params Params
	actors []Actor // index 0 is the player while the round is playing
	dead   []Actor
	status Status
}

// Start spawns a round: the player at the center of the left half of the
// arena and a uniform random number of enemies patrolling near the floor.
func Start(p Params, rng *rand.Rand) (State, error) {
	if err := p.Validate(); err != nil {
		return State{}, err
	}

	count := p.MinEnemies + rng.Intn(p.MaxEnemies-p.MinEnemies+1)
	actors := make([]Actor, 0, count+1)
	actors = append(actors, Actor{
		ID:   0,
		Kind: KindPlayer,
		Pos:  playerSpawn(p),
		Size: p.ActorSize,
	})
	for i := 0; i < count; i++ {
		actors = append(actors, spawnEnemy(p, rng, i+1))
	}

	return State{params: p, actors: actors, status: Playing}, nil
}

// NewState assembles a state from explicit rosters. actors[0] must be the
// player when status is Playing. The slices are copied.
func NewState(p Params, actors, dead []Actor, status Status) (State, error) {
	if err := p.Validate(); err != nil {
		return State{}, err
	}
	if status == Playing && (len(actors) == 0 || actors[0].Kind != KindPlayer) {
		return State{}, fmt.Errorf("engine: playing state needs the player first in the roster")
	}
	for i, a := range actors {
		if i > 0 && a.Kind == KindPlayer {
			return State{}, fmt.Errorf("engine: player at roster index %d", i)
		}
	}
	return State{
		params: p,
		actors: append([]Actor(nil), actors...),
		dead:   append([]Actor(nil), dead...),
		status: status,
	}, nil
}

// playerSpawn is the player's fixed start position.
func playerSpawn(p Params) Vec {
	return V(p.ViewportW/4, p.ViewportH/2)
}

// enemySpawnY places enemies just above the floor.
func enemySpawnY(p Params) float64 {
	return p.ViewportH - p.ActorSize.Y() - p.EnemyFloorGap
}

// spawnEnemy creates an enemy walking left at 1x-2x half the player speed,
// somewhere in a band around the arena center.
func spawnEnemy(p Params, rng *rand.Rand, id int) Actor {
	half := p.PlayerXSpeed / 2
	speed := math.Floor(half * (rng.Float64() + 1))

	center := p.ViewportW / 2
	x := math.Floor(rng.Float64()*center) + center - p.EnemySpawnShift
	x = math.Max(0, math.Min(x, p.ViewportW-p.ActorSize.X()-1))

	return Actor{
		ID:    id,
		Kind:  KindEnemy,
		Pos:   V(x, enemySpawnY(p)),
		Speed: V(-speed, 0),
		Size:  p.ActorSize,
	}
}

// Step advances the round by dt seconds with the given held input flags.
// Finished rounds are returned unchanged. Motion for every actor is resolved
// first; then the first player contact in roster order is resolved.
func (s State) Step(dt float64, in Input) (State, error) {
	if s.status != Playing {
		return s, nil
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return s, fmt.Errorf("%w: %v", ErrInvalidTimeStep, dt)
	}

	actors := make([]Actor, len(s.actors))
	for i, a := range s.actors {
		actors[i] = a.Update(s.params, dt, in)
	}

	next := State{
		params: s.params,
		actors: actors,
		dead:   s.dead,
		status: s.status,
	}
	if i := next.firstContact(); i > 0 {
		next = next.collide(i)
	}
	return next, nil
}

// AdvanceDeadTiles moves every dead actor to its next animation frame and
// drops those that reached limit. Live actors are untouched. A limit <= 0
// keeps every dead actor.
func (s State) AdvanceDeadTiles(limit int) State {
	if len(s.dead) == 0 {
		return s
	}
	dead := make([]Actor, 0, len(s.dead))
	for _, a := range s.dead {
		a.DeadTile++
		if limit > 0 && a.DeadTile >= limit {
			continue
		}
		dead = append(dead, a)
	}
	s.dead = dead
	return s
}

// Params returns the constants the round runs with.
func (s State) Params() Params {
	return s.params
}

// Status returns the round outcome so far.
func (s State) Status() Status {
	return s.status
}

// Actors returns a copy of the live roster.
func (s State) Actors() []Actor {
	return append([]Actor(nil), s.actors...)
}

// Dead returns a copy of the dead roster in the order actors died.
func (s State) Dead() []Actor {
	return append([]Actor(nil), s.dead...)
}

// Player returns the live player, or false once the player has died.
func (s State) Player() (Actor, bool) {
	if len(s.actors) == 0 || s.actors[0].Kind != KindPlayer {
		return Actor{}, false
	}
	return s.actors[0], true
}

// Enemies counts live enemies.
func (s State) Enemies() int {
	n := 0
	for _, a := range s.actors {
		if a.Kind == KindEnemy {
			n++
		}
	}
	return n
}
