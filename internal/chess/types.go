// Package chess provides the core types shared by the move generation engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Light Colour = iota
	Dark
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Light {
		return "Light"
	}
	return "Dark"
}

// Opponent returns the opposing colour.
func (c Colour) Opponent() Colour {
	if c == Light {
		return Dark
	}
	return Light
}

// Forward returns the direction pawns of this colour advance in:
// +1 for Light, -1 for Dark.
func (c Colour) Forward() int {
	if c == Light {
		return 1
	}
	return -1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the algebraic short code of a piece type. Pawns have none.
func (p PieceType) Letter() string {
	letters := []string{"", "N", "B", "R", "Q", "K"}
	if int(p) < len(letters) {
		return letters[p]
	}
	return "?"
}

// Value returns the material value of a piece type. Only the relative
// ordering matters to the evaluator; the king carries a nominal value
// because the game is lost before he is ever captured.
func (p PieceType) Value() int {
	values := []int{10, 30, 35, 50, 90, 20}
	if int(p) < len(values) {
		return values[p]
	}
	return 0
}

// ThreatenedState counts how many pseudo-legal moves of each colour
// currently target a square.
type ThreatenedState struct {
	Light uint8
	Dark  uint8
}

// ByColour returns the threat count of the given colour.
func (t ThreatenedState) ByColour(c Colour) uint8 {
	if c == Light {
		return t.Light
	}
	return t.Dark
}
