package amphipod

import (
	"fmt"
	"strings"
)

// Grid rows. 'X' marks a room cell.
const (
	wallRow      = "#############"
	firstRoomRow = "###X#X#X#X###"
	roomRow      = "  #X#X#X#X#"
	bottomRow    = "  #########"
)

// unfoldRows are spliced below the first room row by Unfold.
var unfoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// splitLines splits input into lines without trailing blanks, spaces or '\r'.
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func lineError(n int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, n, fmt.Sprintf(format, args...))
}

// Parse reads a burrow drawn as in the puzzle statement. The hallway may hold
// amphipods, but not on a slot directly outside a room, and rooms fill from
// the bottom up.
func Parse(input string) (Burrow, error) {
	lines := splitLines(input)
	if len(lines) < 4 {
		return Burrow{}, fmt.Errorf("%w: want at least 4 lines, got %d", ErrMalformedInput, len(lines))
	}
	b, err := NewBurrow(len(lines) - 3)
	if err != nil {
		return Burrow{}, err
	}

	if lines[0] != wallRow {
		return Burrow{}, lineError(1, "want %q, got %q", wallRow, lines[0])
	}
	if err := b.parseHallway(lines[1]); err != nil {
		return Burrow{}, err
	}
	for i := 0; i < b.Depth(); i++ {
		tmpl := roomRow
		if i == 0 {
			tmpl = firstRoomRow
		}
		if err := b.parseRoomRow(i, lines[2+i], tmpl); err != nil {
			return Burrow{}, err
		}
	}
	if last := lines[len(lines)-1]; last != bottomRow {
		return Burrow{}, lineError(len(lines), "want %q, got %q", bottomRow, last)
	}

	for r := 0; r < Rooms; r++ {
		for i := 1; i < b.Depth(); i++ {
			if b.Room(r, i) == Empty && b.Room(r, i-1) != Empty {
				return Burrow{}, fmt.Errorf("%w: room %s has an amphipod above an empty slot", ErrMalformedInput, Owner(r))
			}
		}
	}

	return b, nil
}

func (b *Burrow) parseHallway(line string) error {
	if len(line) != HallwayLen+2 || line[0] != '#' || line[len(line)-1] != '#' {
		return lineError(2, "want '#' + %d hallway cells + '#', got %q", HallwayLen, line)
	}
	for x := 0; x < HallwayLen; x++ {
		a, ok := ParseAmphipod(line[x+1])
		if !ok {
			return lineError(2, "unexpected %q at column %d", line[x+1], x+2)
		}
		if a != Empty && isDoor(x) {
			return lineError(2, "%s stopped outside a room at column %d", a, x+2)
		}
		b.slots[x] = a
	}

	return nil
}

func (b *Burrow) parseRoomRow(i int, line, tmpl string) error {
	n := 3 + i
	if len(line) != len(tmpl) {
		return lineError(n, "want %q, got %q", tmpl, line)
	}
	r := 0
	for c := 0; c < len(tmpl); c++ {
		if tmpl[c] != 'X' {
			if line[c] != tmpl[c] {
				return lineError(n, "unexpected %q at column %d", line[c], c+1)
			}
			continue
		}
		a, ok := ParseAmphipod(line[c])
		if !ok {
			return lineError(n, "unexpected %q at column %d", line[c], c+1)
		}
		b.slots[roomSlot(r, i)] = a
		r++
	}

	return nil
}

func isDoor(x int) bool {
	return x >= Door(0) && x <= Door(Rooms-1) && x%2 == 0
}

// String draws b in the input format; Parse(b.String()) == b.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString(wallRow)
	sb.WriteString("\n#")
	for x := 0; x < HallwayLen; x++ {
		sb.WriteByte(b.Hallway(x).Byte())
	}
	sb.WriteString("#\n")
	for i := 0; i < b.Depth(); i++ {
		tmpl := roomRow
		if i == 0 {
			tmpl = firstRoomRow
		}
		r := 0
		for c := 0; c < len(tmpl); c++ {
			if tmpl[c] == 'X' {
				sb.WriteByte(b.Room(r, i).Byte())
				r++
			} else {
				sb.WriteByte(tmpl[c])
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(bottomRow)
	sb.WriteByte('\n')

	return sb.String()
}

// Unfold inserts the two hidden room rows below the first room row.
func Unfold(input string) (string, error) {
	lines := splitLines(input)
	if len(lines) < 4 {
		return "", fmt.Errorf("%w: want at least 4 lines, got %d", ErrMalformedInput, len(lines))
	}
	out := make([]string, 0, len(lines)+len(unfoldRows))
	out = append(out, lines[:3]...)
	out = append(out, unfoldRows...)
	out = append(out, lines[3:]...)

	return strings.Join(out, "\n") + "\n", nil
}
