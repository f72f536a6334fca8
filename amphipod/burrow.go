// SPDX-License-Identifier: MIT

package amphipod

import "fmt"

// Burrow is an immutable hallway-and-rooms snapshot.
// Room slots below Depth() are always Empty, so == compares burrows structurally.
type Burrow struct {
	slots [slotCount]Amphipod
	depth uint8
}

// NewBurrow returns an empty burrow whose rooms are depth slots deep.
func NewBurrow(depth int) (Burrow, error) {
	if depth < 1 || depth > MaxDepth {
		return Burrow{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDepth, depth, MaxDepth)
	}

	return Burrow{depth: uint8(depth)}, nil
}

// roomSlot maps slot i of room r into the slot array.
func roomSlot(r, i int) int { return HallwayLen + r*MaxDepth + i }

// Depth returns the number of slots in each room.
func (b Burrow) Depth() int { return int(b.depth) }

// Hallway returns the content of hallway slot x.
func (b Burrow) Hallway(x int) Amphipod { return b.slots[x] }

// Room returns the content of slot i of room r.
func (b Burrow) Room(r, i int) Amphipod { return b.slots[roomSlot(r, i)] }

// At returns the content of l.
func (b Burrow) At(l Location) Amphipod {
	if l.Room == HallwayRoom {
		return b.Hallway(l.Index)
	}

	return b.Room(l.Room, l.Index)
}

// Counts returns how many amphipods of each type the burrow holds.
// Index 0 (Empty) is always zero.
func (b Burrow) Counts() [Desert + 1]int {
	var c [Desert + 1]int
	for _, a := range b.slots {
		if a != Empty {
			c[a]++
		}
	}

	return c
}

// Organized reports whether every room is full of its own amphipods.
func (b Burrow) Organized() bool {
	for r := 0; r < Rooms; r++ {
		for i := 0; i < b.Depth(); i++ {
			if b.Room(r, i) != Owner(r) {
				return false
			}
		}
	}

	return true
}

// top returns the shallowest occupied slot of room r.
func (b Burrow) top(r int) (int, bool) {
	for i := 0; i < b.Depth(); i++ {
		if b.Room(r, i) != Empty {
			return i, true
		}
	}

	return 0, false
}

// settledFrom reports whether slots i..depth-1 of room r all hold its owner.
func (b Burrow) settledFrom(r, i int) bool {
	for ; i < b.Depth(); i++ {
		if b.Room(r, i) != Owner(r) {
			return false
		}
	}

	return true
}

// Settled reports whether every amphipod in room r belongs there. Amphipods of
// a settled room never move again; an empty room is settled.
func (b Burrow) Settled(r int) bool {
	i, ok := b.top(r)

	return !ok || b.settledFrom(r, i)
}

// entry returns the slot where a would land in its own room, or false while
// the room still holds a foreign amphipod or is full.
func (b Burrow) entry(a Amphipod) (int, bool) {
	r := a.Room()
	slot := -1
	for i := 0; i < b.Depth(); i++ {
		switch s := b.Room(r, i); {
		case s == Empty:
			slot = i
		case s != a:
			return 0, false
		}
	}

	return slot, slot >= 0
}

// clear reports whether every hallway slot strictly between x and y is empty.
func (b Burrow) clear(x, y int) bool {
	if x > y {
		x, y = y, x
	}
	for c := x + 1; c < y; c++ {
		if b.slots[c] != Empty {
			return false
		}
	}

	return true
}
