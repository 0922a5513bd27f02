package engine

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestStartSpawns(t *testing.T) {
	p := DefaultParams()

	for seed := int64(0); seed < 200; seed++ {
		s, err := Start(p, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Start() failed: %v", err)
		}

		if s.Status() != Playing {
			t.Fatalf("seed %d: status = %v, expected playing", seed, s.Status())
		}
		player, ok := s.Player()
		if !ok {
			t.Fatalf("seed %d: no player", seed)
		}
		if player.Pos != V(150, 200) || player.Speed != V(0, 0) {
			t.Errorf("seed %d: player spawned at %v with %v", seed, player.Pos, player.Speed)
		}

		n := s.Enemies()
		if n < 1 || n > 7 {
			t.Errorf("seed %d: enemy count = %d, expected 1..7", seed, n)
		}
		for _, e := range s.Actors()[1:] {
			if e.Kind != KindEnemy {
				t.Fatalf("seed %d: non-enemy after the player: %v", seed, e)
			}
			if e.Pos.Y() != 367 {
				t.Errorf("seed %d: enemy y = %v, expected 367", seed, e.Pos.Y())
			}
			if e.Pos.X() < 200 || e.Pos.X() >= 500 || e.Pos.X() != math.Floor(e.Pos.X()) {
				t.Errorf("seed %d: enemy x = %v, expected an integer in [200, 500)", seed, e.Pos.X())
			}
			if e.Speed.X() > -50 || e.Speed.X() < -100 || e.Speed.Y() != 0 {
				t.Errorf("seed %d: enemy speed = %v, expected leftward 50..100", seed, e.Speed)
			}
		}
		if len(s.Dead()) != 0 {
			t.Errorf("seed %d: dead roster should start empty", seed)
		}
	}
}

func TestStartEnemyCountCoversRange(t *testing.T) {
	seen := make(map[int]bool)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		s, err := Start(DefaultParams(), rng)
		if err != nil {
			t.Fatalf("Start() failed: %v", err)
		}
		seen[s.Enemies()] = true
	}
	for n := 1; n <= 7; n++ {
		if !seen[n] {
			t.Errorf("enemy count %d never spawned in 500 rounds", n)
		}
	}
}

func TestStartDeterminism(t *testing.T) {
	a, _ := Start(DefaultParams(), rand.New(rand.NewSource(12345)))
	b, _ := Start(DefaultParams(), rand.New(rand.NewSource(12345)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should spawn identical rounds")
	}
}

func TestStartRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.ViewportH = 10
	if _, err := Start(p, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Start() error = %v, expected ErrInvalidParams", err)
	}
}

func TestStepScenario(t *testing.T) {
	p := DefaultParams()
	s := mustState(t, []Actor{
		newPlayer(150, 200, 0, 0),
		newEnemy(1, 140, 367, -50),
	}, nil, Playing)

	next, err := s.Step(0.1, 0)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	player, _ := next.Player()
	wantVY := 0.1 * p.Gravity // 42.8
	if !approx(player.Speed.Y(), wantVY) {
		t.Errorf("player vy = %v, expected %v", player.Speed.Y(), wantVY)
	}
	if !approx(player.Pos.Y(), 200+wantVY*0.1) {
		t.Errorf("player y = %v, expected %v", player.Pos.Y(), 200+wantVY*0.1)
	}
	enemy := next.Actors()[1]
	if !approx(enemy.Pos.X(), 135) {
		t.Errorf("enemy x = %v, expected 135", enemy.Pos.X())
	}
	if next.Status() != Playing || len(next.Dead()) != 0 {
		t.Errorf("no collision expected yet, status %v dead %v", next.Status(), next.Dead())
	}

	// The previous state is untouched.
	if old, _ := s.Player(); old.Pos != V(150, 200) {
		t.Errorf("Step modified the previous state: %v", old.Pos)
	}
}

func TestStepStompWins(t *testing.T) {
	p := DefaultParams()
	// Falling onto a still enemy: after the move the boxes overlap.
	s := mustState(t, []Actor{
		newPlayer(100, 340, 0, 100),
		newEnemy(1, 100, 367, 0),
	}, nil, Playing)

	next, err := s.Step(0.1, 0)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if next.Status() != Won {
		t.Fatalf("status = %v, expected won", next.Status())
	}
	player, ok := next.Player()
	if !ok {
		t.Fatal("player should be alive after a stomp")
	}
	if player.Speed.Y() != -p.JumpSpeed/2 {
		t.Errorf("player vy = %v, expected %v", player.Speed.Y(), -p.JumpSpeed/2)
	}
	if dead := next.Dead(); len(dead) != 1 || dead[0].Kind != KindEnemy {
		t.Errorf("dead roster = %v, expected the enemy", dead)
	}
}

func TestStepStompNotLastKeepsPlaying(t *testing.T) {
	s := mustState(t, []Actor{
		newPlayer(100, 340, 0, 100),
		newEnemy(1, 100, 367, 0),
		newEnemy(2, 450, 367, -60),
	}, nil, Playing)

	next, err := s.Step(0.1, 0)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if next.Status() != Playing {
		t.Errorf("status = %v, expected playing", next.Status())
	}
	if next.Enemies() != 1 {
		t.Errorf("enemies = %d, expected 1", next.Enemies())
	}
}

func TestStepSideHitLoses(t *testing.T) {
	s := mustState(t, []Actor{
		newPlayer(100, 369, 0, 0),
		newEnemy(1, 120, 367, 0),
	}, nil, Playing)

	next, err := s.Step(0.1, 0)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if next.Status() != Lost {
		t.Fatalf("status = %v, expected lost", next.Status())
	}
	if dead := next.Dead(); len(dead) != 1 || dead[0].Kind != KindPlayer {
		t.Errorf("dead roster = %v, expected the player", dead)
	}
}

func TestStepResolvesOnlyFirstContact(t *testing.T) {
	// Two enemies under a falling player: only the first in roster order dies.
	s := mustState(t, []Actor{
		newPlayer(100, 340, 0, 100),
		newEnemy(1, 90, 367, 0),
		newEnemy(2, 110, 367, 0),
	}, nil, Playing)

	next, err := s.Step(0.1, 0)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	dead := next.Dead()
	if len(dead) != 1 || dead[0].ID != 1 {
		t.Errorf("dead roster = %v, expected only enemy 1", dead)
	}
	if next.Status() != Playing {
		t.Errorf("status = %v, expected playing", next.Status())
	}
}

func TestStepRejectsBadTimeStep(t *testing.T) {
	s, _ := Start(DefaultParams(), rand.New(rand.NewSource(1)))

	for _, dt := range []float64{0, -0.016, math.NaN(), math.Inf(1), math.Inf(-1)} {
		next, err := s.Step(dt, 0)
		if !errors.Is(err, ErrInvalidTimeStep) {
			t.Errorf("Step(%v) error = %v, expected ErrInvalidTimeStep", dt, err)
		}
		if !reflect.DeepEqual(next, s) {
			t.Errorf("Step(%v) should return the state unchanged", dt)
		}
	}
}

func TestStepAfterEndIsNoop(t *testing.T) {
	for _, status := range []Status{Won, Lost} {
		s := mustState(t, []Actor{newEnemy(1, 300, 367, -50)}, []Actor{newPlayer(100, 369, 0, 0)}, status)

		next, err := s.Step(0.1, InputJump|InputRight)
		if err != nil {
			t.Fatalf("Step() on a finished round failed: %v", err)
		}
		if !reflect.DeepEqual(next, s) {
			t.Errorf("%v: Step should not change a finished round", status)
		}
	}
}

func TestAdvanceDeadTiles(t *testing.T) {
	s := mustState(t, []Actor{newPlayer(100, 369, 0, 0), newEnemy(2, 300, 367, -50)},
		[]Actor{newEnemy(1, 10, 367, 0)}, Playing)

	s2 := s.AdvanceDeadTiles(3)
	if got := s2.Dead()[0].DeadTile; got != 1 {
		t.Errorf("DeadTile = %d, expected 1", got)
	}
	if s.Dead()[0].DeadTile != 0 {
		t.Error("AdvanceDeadTiles modified the previous state")
	}
	if !reflect.DeepEqual(s2.Actors(), s.Actors()) {
		t.Error("AdvanceDeadTiles should not touch live actors")
	}

	s3 := s2.AdvanceDeadTiles(3).AdvanceDeadTiles(3)
	if len(s3.Dead()) != 0 {
		t.Errorf("finished animations should leave the dead roster, got %v", s3.Dead())
	}
	if s3.Enemies() != 1 {
		t.Error("dropped dead actors must not come back to life")
	}
}

func TestNewStateValidation(t *testing.T) {
	p := DefaultParams()
	if _, err := NewState(p, nil, nil, Playing); err == nil {
		t.Error("playing state without a player should be rejected")
	}
	if _, err := NewState(p, []Actor{newEnemy(1, 0, 0, 0), newPlayer(0, 0, 0, 0)}, nil, Lost); err == nil {
		t.Error("player after index 0 should be rejected")
	}
}
