package amphipod

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/dijkstra"
)

// Solution is the outcome of Organize.
type Solution struct {
	// Energy is the least total energy needed to organize the burrow.
	Energy int

	// Steps is one optimal move sequence. Nil unless WithSteps was given.
	Steps []Move

	// Expanded and Discovered are the search statistics.
	Expanded   int
	Discovered int
}

// Options configures Organize.
type Options struct {
	Steps    bool               // reconstruct the move sequence
	AStar    bool               // order the search by energy + LowerBound
	OnExpand func(energy int64) // called for every expanded burrow
}

// Option is a functional option for Organize.
type Option func(*Options)

// WithSteps makes Organize return an optimal move sequence.
func WithSteps() Option {
	return func(o *Options) { o.Steps = true }
}

// WithAStar guides the search with LowerBound. The result is unchanged.
func WithAStar() Option {
	return func(o *Options) { o.AStar = true }
}

// WithOnExpand registers a callback receiving the queue priority of every
// expanded burrow, in expansion order.
func WithOnExpand(fn func(energy int64)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// organizer exposes burrows and their moves as a dijkstra.Problem.
type organizer struct{}

func (organizer) Neighbors(b Burrow) []dijkstra.Edge[Burrow] {
	moves := b.Moves()
	edges := make([]dijkstra.Edge[Burrow], len(moves))
	for i, m := range moves {
		edges[i] = dijkstra.Edge[Burrow]{To: m.Next, Weight: int64(m.Energy)}
	}

	return edges
}

func (organizer) Goal(b Burrow) bool { return b.Organized() }

func (organizer) Estimate(b Burrow) int64 { return int64(b.LowerBound()) }

// Organize returns the least energy needed to move every amphipod of b into
// its own room. It returns ErrNoSolution when no organized burrow is reachable.
func Organize(ctx context.Context, b Burrow, opts ...Option) (Solution, error) {
	if b.Depth() == 0 {
		return Solution{}, fmt.Errorf("%w: zero-value burrow", ErrInvalidDepth)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	sopts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if cfg.Steps {
		sopts = append(sopts, dijkstra.WithReturnPath())
	}
	if cfg.AStar {
		sopts = append(sopts, dijkstra.WithHeuristic())
	}
	if cfg.OnExpand != nil {
		sopts = append(sopts, dijkstra.WithOnPop(cfg.OnExpand))
	}

	res, err := dijkstra.Search[Burrow](organizer{}, b, sopts...)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return Solution{}, fmt.Errorf("%w: %w", ErrNoSolution, err)
	}
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Energy:     int(res.Distance),
		Expanded:   res.Expanded,
		Discovered: res.Discovered,
	}
	if res.Path != nil {
		sol.Steps = steps(res.Path)
	}

	return sol, nil
}

// steps recovers the moves between consecutive burrows of path.
func steps(path []Burrow) []Move {
	out := make([]Move, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		for _, m := range path[i-1].Moves() {
			if m.Next == path[i] {
				out = append(out, m)
				break
			}
		}
	}

	return out
}

// Solve answers both halves of the puzzle for input: the least energy for the
// burrow as given and for its unfolded version.
func Solve(ctx context.Context, input string, opts ...Option) (part1, part2 int, err error) {
	b, err := Parse(input)
	if err != nil {
		return 0, 0, err
	}
	sol, err := Organize(ctx, b, opts...)
	if err != nil {
		return 0, 0, fmt.Errorf("part 1: %w", err)
	}

	unfolded, err := Unfold(input)
	if err != nil {
		return 0, 0, err
	}
	b, err = Parse(unfolded)
	if err != nil {
		return 0, 0, fmt.Errorf("part 2: %w", err)
	}
	sol2, err := Organize(ctx, b, opts...)
	if err != nil {
		return 0, 0, fmt.Errorf("part 2: %w", err)
	}

	return sol.Energy, sol2.Energy, nil
}
