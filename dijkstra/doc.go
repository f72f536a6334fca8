// Package dijkstra provides a uniform-cost shortest-path search over implicitly
// defined graphs with non-negative edge weights.
//
// Overview:
//
//   - The graph is never materialised. A Problem enumerates the outgoing edges of a
//     state on demand and reports whether a state is a goal.
//   - States are any comparable Go value, so fixed-size arrays and structs of arrays
//     can be used directly as map keys for the distance map and the visited set.
//   - The search pops states in non-decreasing distance order from a min-heap. The
//     first goal popped is therefore reached with minimum total cost.
//
// When to use:
//
//   - Puzzle and planning searches whose state space is finite but too large to
//     build up front (token-sorting puzzles, sliding puzzles, routing over
//     generated configurations).
//   - Any single-source, goal-directed search with non-negative costs.
//
// Key features:
//
//   - Functional options configure behavior without changing the API signature.
//   - WithReturnPath: record predecessors and return the sequence of states.
//   - WithMaxDistance: never relax edges beyond a distance cap.
//   - WithHeuristic: switch to A* ordering using the Problem's Estimator.
//     The estimate must be consistent (never drop by more than the edge weight),
//     otherwise the first goal popped is not guaranteed to be optimal.
//   - WithOnPop: observe every expanded state priority (diagnostics, tests).
//   - WithContext: cancellation is checked between pops.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the V states actually discovered.
//   - Space: O(V + E) for the distance map, visited set and lazy heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilProblem:       the Problem is nil.
//   - ErrNoEstimator:      WithHeuristic was requested but the Problem has no Estimate method.
//   - ErrOptionViolation:  an option was given an invalid value.
//   - ErrNegativeWeight:   a generated edge had a negative weight.
//   - ErrNegativeEstimate: the Estimator returned a negative value.
//   - ErrNoPath:           the queue emptied without reaching a goal.
//
// Thread safety:
//
//   - Search is single-threaded and keeps all of its state local to the call.
//     Concurrent calls are safe as long as the Problem itself is.
package dijkstra
