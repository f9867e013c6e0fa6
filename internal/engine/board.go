// Package engine implements the move generation and position legality core:
// an arena-backed board, per-piece pseudo-legal move generators, the
// threatened-square census, the clone-and-simulate legality filter, the
// mutation engine and the static evaluator.
package engine

import (
	"fmt"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// noPiece marks an empty grid cell.
const noPiece = -1

// BoardPiece is a piece bound to a colour and a square on a board.
type BoardPiece struct {
	Type      chess.PieceType
	Colour    chess.Colour
	Coord     chess.Coord
	HasMoved  bool
	OutOfGame bool
}

// Board holds the full state of a game of chess. Pieces live in a single
// arena slice and are addressed by index from the grid, so the grid view
// and the flat piece list can never disagree about which record a square
// holds. Captured pieces stay in the arena marked OutOfGame; indices are
// stable for the lifetime of the board.
type Board struct {
	grid   [chess.BoardSize][chess.BoardSize]int
	pieces []BoardPiece

	// ToMove is the colour that has the next move.
	ToMove chess.Colour

	// MoveNumber counts full moves. It starts at 1 and increments once
	// per committed Dark move.
	MoveNumber int

	// HalfmoveClock counts moves since the last pawn move or capture,
	// for external draw-rule logic.
	HalfmoveClock int

	// CastleRights tracks which castle variants are still notionally
	// available.
	CastleRights chess.CastleRights

	// EnPassant is the currently open en passant opportunity, if any.
	EnPassant *chess.EnPassant

	// threats is the per-square threat census. It is valid only right
	// after a full recompute; mutations zero it first and rebuild it
	// last, so it is never observable in a stale state.
	threats [chess.BoardSize][chess.BoardSize]chess.ThreatenedState
}

// NewBoard returns an empty board with light to move and full castle rights.
func NewBoard() *Board {
	b := &Board{
		ToMove:       chess.Light,
		MoveNumber:   1,
		CastleRights: chess.NewCastleRights(),
	}
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			b.grid[x][y] = noPiece
		}
	}
	return b
}

// NewInitialBoard returns a board with the standard starting position set
// up and the threat census computed.
func NewInitialBoard() *Board {
	b := NewBoard()

	backRank := []chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for x := 0; x < chess.BoardSize; x++ {
		b.AddPiece(BoardPiece{Type: backRank[x], Colour: chess.Light, Coord: chess.NewCoord(x, 0)})
		b.AddPiece(BoardPiece{Type: chess.Pawn, Colour: chess.Light, Coord: chess.NewCoord(x, 1)})
		b.AddPiece(BoardPiece{Type: chess.Pawn, Colour: chess.Dark, Coord: chess.NewCoord(x, 6)})
		b.AddPiece(BoardPiece{Type: backRank[x], Colour: chess.Dark, Coord: chess.NewCoord(x, 7)})
	}

	b.RecomputeThreats()
	return b
}

// AddPiece places a piece into the arena and onto the grid. The piece's
// coordinate must be a free square.
func (b *Board) AddPiece(p BoardPiece) {
	c := p.Coord
	if !c.Valid() {
		panic(fmt.Sprintf("engine: add piece off the board at %v", c))
	}
	if b.grid[c.X][c.Y] != noPiece {
		panic(fmt.Sprintf("engine: add piece onto occupied square %v", c))
	}
	b.pieces = append(b.pieces, p)
	b.grid[c.X][c.Y] = len(b.pieces) - 1
}

// PieceAt returns the piece on the given square, if any.
func (b *Board) PieceAt(c chess.Coord) (BoardPiece, bool) {
	if !c.Valid() {
		return BoardPiece{}, false
	}
	idx := b.grid[c.X][c.Y]
	if idx == noPiece {
		return BoardPiece{}, false
	}
	return b.pieces[idx], true
}

// pieceIndexAt returns the arena index of the piece on a square, or noPiece.
func (b *Board) pieceIndexAt(c chess.Coord) int {
	if !c.Valid() {
		return noPiece
	}
	return b.grid[c.X][c.Y]
}

// Pieces returns every piece still in the game.
func (b *Board) Pieces() []BoardPiece {
	result := make([]BoardPiece, 0, len(b.pieces))
	for _, p := range b.pieces {
		if !p.OutOfGame {
			result = append(result, p)
		}
	}
	return result
}

// ColourPieces returns every in-game piece of one colour.
func (b *Board) ColourPieces(colour chess.Colour) []BoardPiece {
	var result []BoardPiece
	for _, p := range b.pieces {
		if !p.OutOfGame && p.Colour == colour {
			result = append(result, p)
		}
	}
	return result
}

// KingCoord returns the square of the given colour's king.
func (b *Board) KingCoord(colour chess.Colour) (chess.Coord, bool) {
	for _, p := range b.pieces {
		if !p.OutOfGame && p.Colour == colour && p.Type == chess.King {
			return p.Coord, true
		}
	}
	return chess.Coord{}, false
}

// ThreatenedState returns the threat census entry for a square. The census
// reflects the position as of the last committed mutation.
func (b *Board) ThreatenedState(c chess.Coord) chess.ThreatenedState {
	if !c.Valid() {
		return chess.ThreatenedState{}
	}
	return b.threats[c.X][c.Y]
}

// Clone returns a deep copy of the board. Speculative mutation on the clone
// never aliases the original: the arena is copied wholesale and the en
// passant record is duplicated.
func (b *Board) Clone() *Board {
	clone := *b
	clone.pieces = make([]BoardPiece, len(b.pieces))
	copy(clone.pieces, b.pieces)
	if b.EnPassant != nil {
		ep := *b.EnPassant
		clone.EnPassant = &ep
	}
	return &clone
}

// String renders the board as eight ranks of piece letters, rank 8 first,
// with dots for empty squares.
func (b *Board) String() string {
	var out []byte
	for y := chess.BoardSize - 1; y >= 0; y-- {
		for x := 0; x < chess.BoardSize; x++ {
			p, ok := b.PieceAt(chess.NewCoord(x, y))
			switch {
			case !ok:
				out = append(out, '.')
			case p.Colour == chess.Light:
				out = append(out, pieceLetter(p.Type))
			default:
				out = append(out, pieceLetter(p.Type)+'a'-'A')
			}
			if x < chess.BoardSize-1 {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
