package engine

// Kind discriminates actor behavior.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Input is the set of control flags held during a step.
type Input uint8

const (
	InputLeft Input = 1 << iota
	InputRight
	InputJump

	inputKnown = InputLeft | InputRight | InputJump
)

// Has reports whether every flag in f is held.
func (in Input) Has(f Input) bool {
	return in&f == f
}

// Actor is a simulated entity. Actors are values: updates return new actors.
type Actor struct {
	ID    int  // Stable identity within a round, assigned at spawn
	Kind  Kind // Player or enemy
	Pos   Vec  // Top-left corner of the bounding box
	Speed Vec  // Velocity in units per second
	Size  Vec  // Bounding-box dimensions

	// DeadTile is the death animation frame, advanced only by the
	// animation collaborator once the actor is on the dead roster.
	DeadTile int
}

// Right returns the x-coordinate of the right edge.
func (a Actor) Right() float64 {
	return a.Pos.X() + a.Size.X()
}

// Bottom returns the y-coordinate of the bottom edge.
func (a Actor) Bottom() float64 {
	return a.Pos.Y() + a.Size.Y()
}

// Facing returns -1 when moving left, 1 when moving right and 0 when
// horizontally still, so renderers can keep the previous direction.
func (a Actor) Facing() int {
	switch {
	case a.Speed.X() < 0:
		return -1
	case a.Speed.X() > 0:
		return 1
	default:
		return 0
	}
}

// Update produces the actor's next state after dt seconds.
// Enemies ignore input.
func (a Actor) Update(p Params, dt float64, in Input) Actor {
	switch a.Kind {
	case KindPlayer:
		return updatePlayer(a, p, dt, in&inputKnown)
	case KindEnemy:
		return updateEnemy(a, p.Arena(), dt)
	default:
		return a
	}
}

// updateEnemy moves an enemy along its velocity, reversing the whole
// velocity vector instead of moving whenever the next position touches a wall.
func updateEnemy(a Actor, arena Arena, dt float64) Actor {
	next := a.Pos.Plus(a.Speed.Times(dt))
	if !arena.TouchesWall(next, a.Size) {
		a.Pos = next
		return a
	}
	a.Speed = a.Speed.Times(-1)
	return a
}

// updatePlayer applies horizontal control, then gravity and the vertical move.
// Ground contact is inferred from a blocked downward move; jump is only
// honored then, never while rising into the ceiling.
func updatePlayer(a Actor, p Params, dt float64, in Input) Actor {
	arena := p.Arena()

	xSpeed := 0.0
	if in.Has(InputLeft) {
		xSpeed -= p.PlayerXSpeed
	}
	if in.Has(InputRight) {
		xSpeed += p.PlayerXSpeed
	}

	pos := a.Pos
	if movedX := pos.Plus(V(xSpeed*dt, 0)); !arena.TouchesWall(movedX, a.Size) {
		pos = movedX
	}

	ySpeed := a.Speed.Y() + dt*p.Gravity
	movedY := pos.Plus(V(0, ySpeed*dt))
	switch {
	case !arena.TouchesWall(movedY, a.Size):
		pos = movedY
	case in.Has(InputJump) && ySpeed > 0:
		ySpeed = -p.JumpSpeed
	default:
		ySpeed = 0
	}

	a.Pos = pos
	a.Speed = V(xSpeed, ySpeed)
	return a
}
