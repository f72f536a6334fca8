// Package dijkstra_test provides examples demonstrating how to use Search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/dijkstra"
)

// doubler reaches a target number from 1 using "+1" and "×2", each costing 1.
// Its state space is infinite; the search still stops at the first goal popped.
type doubler int

func (d doubler) Neighbors(n int) []dijkstra.Edge[int] {
	return []dijkstra.Edge[int]{
		{To: n + 1, Weight: 1},
		{To: n * 2, Weight: 1},
	}
}

func (d doubler) Goal(n int) bool { return n == int(d) }

// ExampleSearch finds the shortest operation sequence from 1 to 10.
func ExampleSearch() {
	res, err := dijkstra.Search[int](doubler(10), 1, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distance, res.Path)
	// Output: 4 [1 2 4 5 10]
}
