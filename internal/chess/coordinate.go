package chess

import "fmt"

// BoardSize is the number of squares on each axis.
const BoardSize = 8

// Coord identifies a square on the board. X is the file (0 = a-file) and
// Y the rank (0 = rank 1), both in [0, 7]. Light pawns advance towards
// Y = 7, dark pawns towards Y = 0.
type Coord struct {
	X int
	Y int
}

// NewCoord returns the coordinate for the given file and rank indices.
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// FileLetter returns the file as a letter 'a' through 'h', or ' ' if the
// coordinate is off the board.
func (c Coord) FileLetter() byte {
	if !c.Valid() {
		return ' '
	}
	return byte('a' + c.X)
}

// String returns the square in algebraic form, e.g. "e4".
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", c.FileLetter(), c.Y+1)
}

// Offset returns the coordinate shifted by (dx, dy). The result may lie
// off the board; callers check Valid or the border distance first.
func (c Coord) Offset(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// BorderDistance holds the distance of a square to each board edge.
// Move generators consult it before stepping so that offsets never leave
// the board.
type BorderDistance struct {
	Up    int
	Right int
	Down  int
	Left  int
}

// BorderDistance returns the distance of the coordinate to every border.
func (c Coord) BorderDistance() BorderDistance {
	return BorderDistance{
		Up:    BoardSize - 1 - c.Y,
		Right: BoardSize - 1 - c.X,
		Down:  c.Y,
		Left:  c.X,
	}
}

// Fits reports whether a step of (dx, dy) stays on the board.
func (d BorderDistance) Fits(dx, dy int) bool {
	if dx > 0 && d.Right < dx {
		return false
	}
	if dx < 0 && d.Left < -dx {
		return false
	}
	if dy > 0 && d.Up < dy {
		return false
	}
	if dy < 0 && d.Down < -dy {
		return false
	}
	return true
}
