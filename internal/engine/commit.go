package engine

import (
	"fmt"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// Commit applies a validated move to the board in place. Moves are only
// produced by generators that observed a piece on the origin square, so an
// empty origin is a caller contract violation and panics.
//
// The order is fixed: the threat census is invalidated first, the piece is
// detached, the capture (if any) is resolved at its own square, the piece
// is relocated and possibly promoted, counters and side to move are
// updated, and the census is rebuilt last.
func (b *Board) Commit(from chess.Coord, mv chess.BasicMove) {
	b.clearThreats()

	idx := b.pieceIndexAt(from)
	if idx == noPiece {
		panic(fmt.Sprintf("engine: commit from empty square %v", from))
	}
	moverType := b.pieces[idx].Type
	colour := b.pieces[idx].Colour

	b.grid[from.X][from.Y] = noPiece

	if mv.Capture != nil {
		b.capturePiece(mv.Capture.Square)
	}

	b.pieces[idx].Coord = mv.To
	if moverType == chess.Pawn && (mv.To.Y == 0 || mv.To.Y == chess.BoardSize-1) {
		// Promotion is always to a queen; there is no underpromotion.
		b.pieces[idx].Type = chess.Queen
	}
	b.pieces[idx].HasMoved = true
	b.grid[mv.To.X][mv.To.Y] = idx

	b.EnPassant = nil
	if moverType == chess.Pawn && abs(mv.To.Y-from.Y) == 2 {
		b.EnPassant = &chess.EnPassant{
			Target:     chess.NewCoord(from.X, (from.Y+mv.To.Y)/2),
			PawnSquare: mv.To,
		}
	}

	b.updateCastleRights(moverType, colour, from)
	if mv.Capture != nil {
		b.updateCastleRightsForCapture(mv.Capture.Square)
	}

	if moverType == chess.Pawn || mv.Capture != nil {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if colour == chess.Dark {
		b.MoveNumber++
	}
	b.ToMove = colour.Opponent()

	b.RecomputeThreats()
}

// CommitCastle executes a castle as a single committed move: the king and
// then the rook relocate on the fixed squares of the variant, and both
// castle rights of the colour are cleared for the rest of the game.
func (b *Board) CommitCastle(variant chess.CastleMove) {
	b.clearThreats()

	b.relocate(variant.KingFrom(), variant.KingTo())
	b.relocate(variant.RookFrom(), variant.RookTo())

	colour := variant.Colour()
	b.CastleRights.ClearColour(colour)
	b.EnPassant = nil

	b.HalfmoveClock++
	if colour == chess.Dark {
		b.MoveNumber++
	}
	b.ToMove = colour.Opponent()

	b.RecomputeThreats()
}

// relocate detaches the piece on from and reattaches it on to, which must
// be empty. Used for the two legs of a castle.
func (b *Board) relocate(from, to chess.Coord) {
	idx := b.pieceIndexAt(from)
	if idx == noPiece {
		panic(fmt.Sprintf("engine: relocate from empty square %v", from))
	}
	b.grid[from.X][from.Y] = noPiece
	b.pieces[idx].Coord = to
	b.pieces[idx].HasMoved = true
	b.grid[to.X][to.Y] = idx
}

// capturePiece marks the piece on the square out of game and detaches it
// from the grid. Under en passant the square differs from the committed
// move's destination.
func (b *Board) capturePiece(square chess.Coord) {
	idx := b.pieceIndexAt(square)
	if idx == noPiece {
		return
	}
	b.pieces[idx].OutOfGame = true
	b.grid[square.X][square.Y] = noPiece
}

// updateCastleRights burns the rights a king or rook move gives up. Rights
// track "never moved", so only moves off the home squares matter.
func (b *Board) updateCastleRights(moverType chess.PieceType, colour chess.Colour, from chess.Coord) {
	switch moverType {
	case chess.King:
		b.CastleRights.ClearColour(colour)
	case chess.Rook:
		b.clearRookRight(from)
	}
}

// updateCastleRightsForCapture burns the right belonging to a rook that was
// just captured on its home square.
func (b *Board) updateCastleRightsForCapture(square chess.Coord) {
	b.clearRookRight(square)
}

func (b *Board) clearRookRight(square chess.Coord) {
	switch square {
	case chess.LightKingSide.RookFrom():
		b.CastleRights.LightKingSide = false
	case chess.LightQueenSide.RookFrom():
		b.CastleRights.LightQueenSide = false
	case chess.DarkKingSide.RookFrom():
		b.CastleRights.DarkKingSide = false
	case chess.DarkQueenSide.RookFrom():
		b.CastleRights.DarkQueenSide = false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
