package amphipod

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for parsing and solving.
var (
	// ErrMalformedInput indicates the input text does not describe a burrow.
	ErrMalformedInput = errors.New("amphipod: malformed input")

	// ErrInvalidDepth indicates a room depth outside 1..MaxDepth.
	ErrInvalidDepth = errors.New("amphipod: invalid room depth")

	// ErrNoSolution indicates the search exhausted every reachable burrow.
	ErrNoSolution = errors.New("amphipod: no solution found")
)

// Burrow geometry.
const (
	HallwayLen = 11 // hallway slots, left to right
	Rooms      = 4  // side rooms, left to right
	MaxDepth   = 4  // deepest supported room

	slotCount = HallwayLen + Rooms*MaxDepth

	// HallwayRoom is the Location.Room value of hallway slots.
	HallwayRoom = -1
)

// stops lists the hallway slots an amphipod may stop on: every slot except
// those directly outside a room.
var stops = [...]int{0, 1, 3, 5, 7, 9, 10}

// Door returns the hallway slot directly outside room r.
func Door(r int) int { return 2 + 2*r }

// Amphipod is the content of a burrow slot: Empty or one of four types.
type Amphipod uint8

const (
	Empty Amphipod = iota
	Amber
	Bronze
	Copper
	Desert
)

var (
	amphipodBytes  = [...]byte{'.', 'A', 'B', 'C', 'D'}
	amphipodEnergy = [...]int{0, 1, 10, 100, 1000}
)

// ParseAmphipod converts '.', 'A', 'B', 'C' or 'D'.
func ParseAmphipod(c byte) (Amphipod, bool) {
	for i, b := range amphipodBytes {
		if b == c {
			return Amphipod(i), true
		}
	}

	return Empty, false
}

// Owner returns the amphipod type that belongs in room r.
func Owner(r int) Amphipod { return Amphipod(r + 1) }

// Room returns the index of the room a belongs in. It is -1 for Empty.
func (a Amphipod) Room() int { return int(a) - 1 }

// Energy returns the energy a spends per step.
func (a Amphipod) Energy() int { return amphipodEnergy[a] }

// Byte returns the grid character of a.
func (a Amphipod) Byte() byte { return amphipodBytes[a] }

func (a Amphipod) String() string { return string(a.Byte()) }

// Location addresses a burrow slot. Room is HallwayRoom for the hallway, in
// which case Index is the hallway slot; otherwise Index is the depth in the
// room, 0 being the slot next to the hallway.
type Location struct {
	Room  int
	Index int
}

// InHallway returns the Location of hallway slot x.
func InHallway(x int) Location { return Location{Room: HallwayRoom, Index: x} }

// InRoom returns the Location of slot i of room r.
func InRoom(r, i int) Location { return Location{Room: r, Index: i} }

func (l Location) String() string {
	if l.Room == HallwayRoom {
		return fmt.Sprintf("hallway[%d]", l.Index)
	}

	return fmt.Sprintf("room %s[%d]", Owner(l.Room), l.Index)
}

// Move is one amphipod relocation and the burrow it produces.
type Move struct {
	Amphipod Amphipod
	From, To Location
	Energy   int
	Next     Burrow
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s -> %s (%d)", m.Amphipod, m.From, m.To, m.Energy)
}

func absDiff[T constraints.Integer](a, b T) T {
	if a < b {
		return b - a
	}

	return a - b
}
