package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilProblem indicates that a nil Problem was passed to Search.
	ErrNilProblem = errors.New("dijkstra: problem is nil")

	// ErrNoEstimator indicates that WithHeuristic was requested for a Problem
	// that does not implement Estimator.
	ErrNoEstimator = errors.New("dijkstra: problem does not implement Estimator")

	// ErrOptionViolation indicates that an option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNegativeWeight indicates that a negative edge weight was generated.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNegativeEstimate indicates that the Estimator returned a negative value.
	ErrNegativeEstimate = errors.New("dijkstra: negative estimate encountered")

	// ErrNoPath indicates that every reachable state was expanded without
	// reaching a goal.
	ErrNoPath = errors.New("dijkstra: no path to a goal state")
)

// Edge is an outgoing transition of an implicit graph.
type Edge[S comparable] struct {
	To     S     // successor state
	Weight int64 // transition cost, must be non-negative
}

// Problem defines an implicit graph and its goal predicate.
//
// Neighbors must be deterministic for a given state. Returning the same
// successor more than once is allowed; only the cheapest edge is kept.
type Problem[S comparable] interface {
	Neighbors(s S) []Edge[S]
	Goal(s S) bool
}

// Estimator is implemented by Problems that can bound the remaining cost from
// below. It is only consulted when WithHeuristic is set.
type Estimator[S comparable] interface {
	Estimate(s S) int64
}

// Options configures the behavior of Search.
//
// Ctx         – cancellation; checked between pops. Default context.Background().
// ReturnPath  – if true, Result.Path holds the states from source to goal.
// MaxDistance – edges leading beyond this distance are not relaxed.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Heuristic   – order the queue by distance + Estimate (A*).
// OnPop       – called with the priority of every expanded state.
type Options struct {
	Ctx         context.Context
	ReturnPath  bool
	MaxDistance int64
	Heuristic   bool
	OnPop       func(priority int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the Options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Heuristic:   false,
		OnPop:       nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables predecessor tracking so that Result.Path is filled.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the distance of relaxed edges.
// A negative value is recorded and surfaced as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithHeuristic switches the queue ordering to distance + Estimate.
func WithHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = true
	}
}

// WithOnPop registers a callback invoked with the priority of each expanded state.
func WithOnPop(fn func(priority int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// Result is the outcome of a successful Search.
type Result[S comparable] struct {
	// Goal is the first goal state popped from the queue.
	Goal S

	// Distance is the minimum total weight from the source to Goal.
	Distance int64

	// Path lists the states from source to Goal inclusive.
	// Nil unless WithReturnPath was given.
	Path []S

	// Expanded counts the states popped and expanded (goal included).
	Expanded int

	// Discovered counts the distinct states that received a distance.
	Discovered int
}
