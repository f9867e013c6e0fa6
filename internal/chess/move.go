package chess

// Capture describes the piece taken by a move. Square differs from the
// move's destination only under en passant, where the captured pawn does
// not stand on the square the capturer lands on.
type Capture struct {
	PieceType PieceType
	Square    Coord
}

// BasicMove is a move in its most basic form: a destination square and an
// optional capture. The origin is carried separately by Moves.
type BasicMove struct {
	To      Coord
	Capture *Capture
}

// NewMove returns a quiet move to the given square.
func NewMove(to Coord) BasicMove {
	return BasicMove{To: to}
}

// NewCapture returns a capture of the given piece type on the destination
// square.
func NewCapture(to Coord, taken PieceType) BasicMove {
	return BasicMove{To: to, Capture: &Capture{PieceType: taken, Square: to}}
}

// NewEnPassant returns a pawn capture onto the en passant target square,
// taking the pawn that stands on pawnSquare.
func NewEnPassant(to, pawnSquare Coord) BasicMove {
	return BasicMove{To: to, Capture: &Capture{PieceType: Pawn, Square: pawnSquare}}
}

// IsCapture reports whether the move takes a piece.
func (m BasicMove) IsCapture() bool {
	return m.Capture != nil
}

// IsEnPassant reports whether the move captures a pawn that does not stand
// on the destination square.
func (m BasicMove) IsEnPassant() bool {
	return m.Capture != nil && m.Capture.Square != m.To
}

// Moves groups the pseudo-legal moves of a single piece with its origin
// square.
type Moves struct {
	From Coord
	List []BasicMove
}

// CastleMove identifies one of the four castle variants.
type CastleMove int

const (
	LightKingSide CastleMove = iota
	LightQueenSide
	DarkKingSide
	DarkQueenSide
)

// String returns the castle move in algebraic form.
func (c CastleMove) String() string {
	if c == LightKingSide || c == DarkKingSide {
		return "O-O"
	}
	return "O-O-O"
}

// Colour returns the colour that performs the castle.
func (c CastleMove) Colour() Colour {
	if c == LightKingSide || c == LightQueenSide {
		return Light
	}
	return Dark
}

// KingSide reports whether the castle is on the king side.
func (c CastleMove) KingSide() bool {
	return c == LightKingSide || c == DarkKingSide
}

// backRank returns the rank the castle happens on.
func (c CastleMove) backRank() int {
	if c.Colour() == Light {
		return 0
	}
	return BoardSize - 1
}

// KingFrom returns the square the king castles from.
func (c CastleMove) KingFrom() Coord {
	return Coord{X: 4, Y: c.backRank()}
}

// KingTo returns the square the king castles to.
func (c CastleMove) KingTo() Coord {
	if c.KingSide() {
		return Coord{X: 6, Y: c.backRank()}
	}
	return Coord{X: 2, Y: c.backRank()}
}

// RookFrom returns the square the rook castles from.
func (c CastleMove) RookFrom() Coord {
	if c.KingSide() {
		return Coord{X: 7, Y: c.backRank()}
	}
	return Coord{X: 0, Y: c.backRank()}
}

// RookTo returns the square the rook castles to.
func (c CastleMove) RookTo() Coord {
	if c.KingSide() {
		return Coord{X: 5, Y: c.backRank()}
	}
	return Coord{X: 3, Y: c.backRank()}
}

// CastleRights tracks whether each castle variant is still notionally
// available, meaning king and rook have never moved. It says nothing about
// the castle being currently blocked or passing through threatened squares;
// the castle move generator checks that.
type CastleRights struct {
	LightKingSide  bool
	LightQueenSide bool
	DarkKingSide   bool
	DarkQueenSide  bool
}

// NewCastleRights returns the rights of a fresh game, with every castle
// still available.
func NewCastleRights() CastleRights {
	return CastleRights{
		LightKingSide:  true,
		LightQueenSide: true,
		DarkKingSide:   true,
		DarkQueenSide:  true,
	}
}

// Any reports whether any castle is still available.
func (r CastleRights) Any() bool {
	return r.LightKingSide || r.LightQueenSide || r.DarkKingSide || r.DarkQueenSide
}

// Allows reports whether the given castle variant is still available.
func (r CastleRights) Allows(c CastleMove) bool {
	switch c {
	case LightKingSide:
		return r.LightKingSide
	case LightQueenSide:
		return r.LightQueenSide
	case DarkKingSide:
		return r.DarkKingSide
	case DarkQueenSide:
		return r.DarkQueenSide
	}
	return false
}

// ClearColour removes both castle rights of a colour. Castling is one-shot:
// once a side has castled its rights are gone for the rest of the game.
func (r *CastleRights) ClearColour(c Colour) {
	if c == Light {
		r.LightKingSide = false
		r.LightQueenSide = false
	} else {
		r.DarkKingSide = false
		r.DarkQueenSide = false
	}
}

// EnPassant records a pawn double step that can be answered en passant.
// Target is the skipped square a capturing pawn lands on; PawnSquare is
// the square the double-stepped pawn actually occupies.
type EnPassant struct {
	Target     Coord
	PawnSquare Coord
}
