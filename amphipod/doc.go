// Package amphipod solves the burrow-organizing puzzle of Advent of Code 2021,
// day 23: find the least total energy needed to move every amphipod into its
// own side room.
//
// What
//
//   - Burrow is an immutable snapshot of the hallway (11 slots) and the four
//     side rooms (1..MaxDepth slots each). It is a comparable value: two
//     burrows are equal iff their slots and room depth are equal, so a Burrow
//     can be used directly as a map key.
//   - Moves enumerates every legal single-amphipod move together with its
//     energy cost. There are two move classes:
//   - hallway → own room, when the path is clear and the room holds no
//     foreign amphipod;
//   - room → hallway stopping slot, for the shallowest amphipod of a room
//     that is not yet settled.
//   - Organize runs a uniform-cost search (package dijkstra) over the implicit
//     graph whose vertices are burrows and whose edges are moves.
//
// Input format
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Unfold splices two extra room rows below the first one, turning a depth-2
// burrow into the depth-4 burrow of the second half of the puzzle.
//
// Errors
//
//   - ErrMalformedInput: the text does not follow the grid above.
//   - ErrInvalidDepth:   the room depth is outside 1..MaxDepth.
//   - ErrNoSolution:     no organized burrow is reachable (the input does not
//     hold exactly depth amphipods of each type).
package amphipod
