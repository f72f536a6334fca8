package amphipod

// Moves returns every legal single-amphipod move out of b.
//
// Hallway amphipods only ever move into their own room, straight to the
// deepest free slot. Room amphipods only ever move into the hallway, and only
// the shallowest one of a room that is not settled may leave.
func (b Burrow) Moves() []Move {
	moves := make([]Move, 0, 16)
	moves = b.appendHallwayMoves(moves)
	moves = b.appendRoomMoves(moves)

	return moves
}

func (b Burrow) appendHallwayMoves(moves []Move) []Move {
	for x := 0; x < HallwayLen; x++ {
		a := b.slots[x]
		if a == Empty {
			continue
		}
		i, ok := b.entry(a)
		if !ok {
			continue
		}
		r := a.Room()
		door := Door(r)
		if !b.clear(x, door) {
			continue
		}

		next := b
		next.slots[x] = Empty
		next.slots[roomSlot(r, i)] = a
		moves = append(moves, Move{
			Amphipod: a,
			From:     InHallway(x),
			To:       InRoom(r, i),
			Energy:   (absDiff(x, door) + i + 1) * a.Energy(),
			Next:     next,
		})
	}

	return moves
}

func (b Burrow) appendRoomMoves(moves []Move) []Move {
	for r := 0; r < Rooms; r++ {
		i, ok := b.top(r)
		if !ok || b.settledFrom(r, i) {
			continue
		}
		a := b.Room(r, i)
		door := Door(r)
		for _, x := range stops {
			if b.slots[x] != Empty || !b.clear(door, x) {
				continue
			}

			next := b
			next.slots[roomSlot(r, i)] = Empty
			next.slots[x] = a
			moves = append(moves, Move{
				Amphipod: a,
				From:     InRoom(r, i),
				To:       InHallway(x),
				Energy:   (i + 1 + absDiff(door, x)) * a.Energy(),
				Next:     next,
			})
		}
	}

	return moves
}

// LowerBound returns an admissible, consistent estimate of the energy still
// needed to organize b.
//
// Every amphipod that is not settled must at least walk to its own door and
// take one step in. One sitting in its own room above a foreign amphipod must
// also leave: step up to the hallway, one step aside, one step back.
func (b Burrow) LowerBound() int {
	total := 0
	for x := 0; x < HallwayLen; x++ {
		if a := b.slots[x]; a != Empty {
			total += (absDiff(x, Door(a.Room())) + 1) * a.Energy()
		}
	}
	for r := 0; r < Rooms; r++ {
		for i := 0; i < b.Depth(); i++ {
			a := b.Room(r, i)
			if a == Empty {
				continue
			}
			if b.settledFrom(r, i) {
				break
			}
			if a.Room() == r {
				total += (i + 1 + 3) * a.Energy()
			} else {
				total += (i + 1 + absDiff(Door(r), Door(a.Room())) + 1) * a.Energy()
			}
		}
	}

	return total
}
