// SPDX-License-Identifier: MIT
// Package dijkstra implements uniform-cost search on implicit graphs.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries when they are popped.
//   - The goal test happens on pop, not on push, so the returned distance is final.
//   - Negative weights cannot be pre-scanned on an implicit graph; they are
//     rejected as soon as an edge is generated.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// ctxCheckInterval is the number of pops between two context checks.
const ctxCheckInterval = 1024

// Search runs a shortest-path search from source until the first goal state is
// popped, and returns that goal with its minimum distance.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. p must be non-nil (ErrNilProblem).
//  3. If WithHeuristic is set, p must implement Estimator (ErrNoEstimator).
//
// Returns ErrNoPath when the reachable state space is exhausted, the context
// error when ctx is done, and ErrNegativeWeight / ErrNegativeEstimate when the
// Problem breaks its contract.
func Search[S comparable](p Problem[S], source S, opts ...Option) (*Result[S], error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if p == nil {
		return nil, ErrNilProblem
	}

	var est Estimator[S]
	if cfg.Heuristic {
		e, ok := p.(Estimator[S])
		if !ok {
			return nil, ErrNoEstimator
		}
		est = e
	}

	r := &runner[S]{
		p:       p,
		est:     est,
		options: cfg,
		source:  source,
		dist:    make(map[S]int64),
		visited: make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	if err := r.init(); err != nil {
		return nil, err
	}

	return r.process()
}

// runner holds the mutable state for a single search.
type runner[S comparable] struct {
	p       Problem[S]
	est     Estimator[S] // nil unless Heuristic
	options Options
	source  S
	dist    map[S]int64 // best-known distance from source
	prev    map[S]S     // predecessor on the best-known path; nil unless ReturnPath
	visited map[S]bool  // expanded states
	pq      statePQ[S]
	pops    int
}

// init records dist[source] = 0 and seeds the heap.
func (r *runner[S]) init() error {
	r.dist[r.source] = 0
	pr, err := r.priority(r.source, 0)
	if err != nil {
		return err
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem[S]{state: r.source, dist: 0, priority: pr})

	return nil
}

// process is the main loop: pop, skip stale entries, test the goal, relax.
func (r *runner[S]) process() (*Result[S], error) {
	for r.pq.Len() > 0 {
		if r.pops%ctxCheckInterval == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		r.pops++

		item := heap.Pop(&r.pq).(*stateItem[S])
		u := item.state
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		r.visited[u] = true
		if r.options.OnPop != nil {
			r.options.OnPop(item.priority)
		}

		if r.p.Goal(u) {
			return r.result(u, item.dist), nil
		}

		if err := r.relax(u, item.dist); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// relax pushes every neighbor of u whose distance strictly improves.
func (r *runner[S]) relax(u S, d int64) error {
	var (
		e       Edge[S]
		newDist int64
	)
	for _, e = range r.p.Neighbors(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: weight=%d", ErrNegativeWeight, e.Weight)
		}
		if r.visited[e.To] {
			continue
		}

		newDist = d + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// "<" rather than "≤" avoids pushing duplicates on equal distances.
		if old, ok := r.dist[e.To]; ok && newDist >= old {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}

		pr, err := r.priority(e.To, newDist)
		if err != nil {
			return err
		}
		heap.Push(&r.pq, &stateItem[S]{state: e.To, dist: newDist, priority: pr})
	}

	return nil
}

// priority returns the heap key of s reached at distance d.
func (r *runner[S]) priority(s S, d int64) (int64, error) {
	if r.est == nil {
		return d, nil
	}
	h := r.est.Estimate(s)
	if h < 0 {
		return 0, fmt.Errorf("%w: estimate=%d", ErrNegativeEstimate, h)
	}

	return d + h, nil
}

// result assembles the Result for goal g, walking predecessors if recorded.
func (r *runner[S]) result(g S, d int64) *Result[S] {
	res := &Result[S]{
		Goal:       g,
		Distance:   d,
		Expanded:   len(r.visited),
		Discovered: len(r.dist),
	}
	if r.prev == nil {
		return res
	}

	path := []S{g}
	for s := g; s != r.source; {
		s = r.prev[s]
		path = append(path, s)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// stateItem is a heap entry: a state, the distance it was pushed with, and its
// queue priority (distance, plus the estimate under A*).
type stateItem[S comparable] struct {
	state    S
	dist     int64
	priority int64
}

// statePQ is a min-heap of *stateItem ordered by priority; ties prefer the
// larger distance, i.e. the entry closer to a goal.
type statePQ[S comparable] []*stateItem[S]

func (pq statePQ[S]) Len() int { return len(pq) }

func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].dist > pq[j].dist
}

func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
