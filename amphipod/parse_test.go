package amphipod_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/amphipod"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const exampleUnfolded = `#############
#...........#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`

func mustParse(t testing.TB, s string) amphipod.Burrow {
	t.Helper()
	b, err := amphipod.Parse(s)
	require.NoError(t, err)

	return b
}

func TestParse_Example(t *testing.T) {
	b := mustParse(t, example)
	assert.Equal(t, 2, b.Depth())
	for x := 0; x < amphipod.HallwayLen; x++ {
		assert.Equal(t, amphipod.Empty, b.Hallway(x))
	}
	want := [amphipod.Rooms][2]amphipod.Amphipod{
		{amphipod.Bronze, amphipod.Amber},
		{amphipod.Copper, amphipod.Desert},
		{amphipod.Bronze, amphipod.Copper},
		{amphipod.Desert, amphipod.Amber},
	}
	for r := 0; r < amphipod.Rooms; r++ {
		assert.Equal(t, want[r][0], b.Room(r, 0), "room %d top", r)
		assert.Equal(t, want[r][1], b.Room(r, 1), "room %d bottom", r)
	}
	assert.Equal(t, [5]int{0, 2, 2, 2, 2}, b.Counts())
}

func TestParse_Idempotent(t *testing.T) {
	assert.Equal(t, mustParse(t, example), mustParse(t, example))
	assert.True(t, mustParse(t, example) == mustParse(t, example))
	assert.False(t, mustParse(t, example) == mustParse(t, exampleUnfolded))
}

func TestParse_StringRoundTrip(t *testing.T) {
	for _, in := range []string{example, exampleUnfolded, "#############\n#.A.......D.#\n###.#B#C#.###\n  #A#B#C#D#\n  #########\n"} {
		b := mustParse(t, in)
		assert.Equal(t, in, b.String())
		assert.Equal(t, b, mustParse(t, b.String()))
	}
}

func TestParse_ToleratesCRLFAndTrailingBlanks(t *testing.T) {
	in := strings.ReplaceAll(example, "\n", "\r\n") + "\r\n\n"
	assert.Equal(t, mustParse(t, example), mustParse(t, in))
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "#############\n#...........#\n  #########\n"},
		{"bad top wall", "############\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"short hallway", "#############\n#..........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"bad hallway cell", "#############\n#....x......#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"amphipod outside door", "#############\n#..A........#\n###B#C#B#.###\n  #A#D#C#A#\n  #########\n"},
		{"bad room cell", "#############\n#...........#\n###B#C#E#D###\n  #A#D#C#A#\n  #########\n"},
		{"misaligned room row", "#############\n#...........#\n###B#C#B#D###\n #A#D#C#A#\n  #########\n"},
		{"bad bottom wall", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  ########\n"},
		{"gap in room", "#############\n#...........#\n###B#C#B#D###\n  #.#D#C#A#\n  #########\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := amphipod.Parse(tc.input)
			assert.ErrorIs(t, err, amphipod.ErrMalformedInput)
		})
	}
}

func TestParse_TooDeep(t *testing.T) {
	in, err := amphipod.Unfold(exampleUnfolded)
	require.NoError(t, err)
	_, err = amphipod.Parse(in)
	assert.ErrorIs(t, err, amphipod.ErrInvalidDepth)
}

func TestNewBurrow_Depth(t *testing.T) {
	for _, d := range []int{-1, 0, amphipod.MaxDepth + 1} {
		_, err := amphipod.NewBurrow(d)
		assert.ErrorIs(t, err, amphipod.ErrInvalidDepth, "depth %d", d)
	}
	b, err := amphipod.NewBurrow(3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Depth())
	assert.Equal(t, [5]int{}, b.Counts())
}

func TestUnfold(t *testing.T) {
	got, err := amphipod.Unfold(example)
	require.NoError(t, err)
	assert.Equal(t, exampleUnfolded, got)

	_, err = amphipod.Unfold("#############\n#...........#\n")
	assert.ErrorIs(t, err, amphipod.ErrMalformedInput)
}
