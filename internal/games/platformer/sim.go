package platformer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("platformer: unknown policy")

// Policy picks the held input for the next headless step.
type Policy func(step int, dt float64, s engine.State) engine.Input

// PolicyNames lists the built-in policies in display order.
var PolicyNames = []string{"idle", "walk", "hop", "chase"}

// ParsePolicy returns the built-in policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "idle":
		return idlePolicy, nil
	case "walk":
		return walkPolicy, nil
	case "hop":
		return hopPolicy, nil
	case "chase":
		return chasePolicy, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
}

func idlePolicy(int, float64, engine.State) engine.Input {
	return 0
}

// walkPolicy paces right and left, turning every two seconds.
func walkPolicy(step int, dt float64, _ engine.State) engine.Input {
	if int(float64(step)*dt/2)%2 == 0 {
		return engine.InputRight
	}
	return engine.InputLeft
}

// hopPolicy paces like walk while holding jump.
func hopPolicy(step int, dt float64, s engine.State) engine.Input {
	return walkPolicy(step, dt, s) | engine.InputJump
}

// chasePolicy walks toward the nearest live enemy holding jump.
func chasePolicy(_ int, _ float64, s engine.State) engine.Input {
	p, ok := s.Player()
	if !ok {
		return 0
	}
	best := math.Inf(1)
	var dir engine.Input
	for _, a := range s.Actors() {
		if a.Kind != engine.KindEnemy {
			continue
		}
		dx := a.Pos.X() - p.Pos.X()
		if math.Abs(dx) < best {
			best = math.Abs(dx)
			dir = engine.InputRight
			if dx < 0 {
				dir = engine.InputLeft
			}
		}
	}
	return dir | engine.InputJump
}

// SimOptions configures a headless batch.
type SimOptions struct {
	Config   config.PlatformerConfig
	Rounds   int    // Number of independent rounds
	Steps    int    // Step limit per round
	TickRate int    // Steps per simulated second
	Parallel int    // Concurrent rounds; <= 0 means unbounded
	Seed     int64  // Round i uses Seed+i
	Policy   Policy // Defaults to idle
}

// RoundOutcome is the result of one headless round.
type RoundOutcome struct {
	Round   int
	Seed    int64
	Status  engine.Status
	Steps   int
	Spawned int
	Stomped int
	Elapsed float64 // Simulated seconds
}

// Simulate runs opts.Rounds seeded rounds concurrently and returns their
// outcomes ordered by round. Rounds still playing after opts.Steps report
// engine.Playing.
func Simulate(ctx context.Context, opts SimOptions) ([]RoundOutcome, error) {
	if opts.Rounds <= 0 || opts.Steps <= 0 {
		return nil, fmt.Errorf("platformer: rounds and steps must be positive (got %d, %d)", opts.Rounds, opts.Steps)
	}
	params := ParamsFromConfig(opts.Config)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("platformer: %w", err)
	}

	policy := opts.Policy
	if policy == nil {
		policy = idlePolicy
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := math.Min(1/float64(rate), opts.Config.Round.MaxTimeStep)

	outcomes := make([]RoundOutcome, opts.Rounds)
	eg, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		eg.SetLimit(opts.Parallel)
	}

	for i := 0; i < opts.Rounds; i++ {
		i := i
		eg.Go(func() error {
			out, err := simulateRound(ctx, params, opts.Seed+int64(i), opts.Steps, dt, policy)
			if err != nil {
				return fmt.Errorf("platformer: round %d: %w", i, err)
			}
			out.Round = i
			outcomes[i] = out
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func simulateRound(ctx context.Context, p engine.Params, seed int64, steps int, dt float64, policy Policy) (RoundOutcome, error) {
	s, err := engine.Start(p, rand.New(rand.NewSource(seed)))
	if err != nil {
		return RoundOutcome{}, err
	}
	out := RoundOutcome{Seed: seed, Spawned: s.Enemies()}

	for step := 0; step < steps && s.Status() == engine.Playing; step++ {
		if step%256 == 0 {
			if err := ctx.Err(); err != nil {
				return RoundOutcome{}, err
			}
		}
		s, err = s.Step(dt, policy(step, dt, s))
		if err != nil {
			return RoundOutcome{}, err
		}
		out.Steps++
	}

	out.Status = s.Status()
	out.Stomped = out.Spawned - s.Enemies()
	out.Elapsed = float64(out.Steps) * dt
	return out, nil
}

// SimSummary aggregates a batch of outcomes.
type SimSummary struct {
	Rounds     int
	Won        int
	Lost       int
	Unfinished int
	Spawned    int
	Stomped    int
	MedianWin  float64 // Median simulated seconds of won rounds, 0 if none
}

// Summarize aggregates outcomes.
func Summarize(outcomes []RoundOutcome) SimSummary {
	sum := SimSummary{Rounds: len(outcomes)}
	var wins []float64
	for _, o := range outcomes {
		switch o.Status {
		case engine.Won:
			sum.Won++
			wins = append(wins, o.Elapsed)
		case engine.Lost:
			sum.Lost++
		default:
			sum.Unfinished++
		}
		sum.Spawned += o.Spawned
		sum.Stomped += o.Stomped
	}
	if len(wins) > 0 {
		sort.Float64s(wins)
		sum.MedianWin = wins[len(wins)/2]
	}
	return sum
}
