package engine

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// Ray and step offsets as (dx, dy) pairs. Ray order is fixed so that move
// lists are deterministic: N, E, S, W for linear rays and NW, NE, SE, SW
// for diagonal rays, each walked from the origin outward.
var (
	linearOffsets   = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalOffsets = [4][2]int{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
)

// PieceMoves returns the pseudo-legal moves of a piece of the given type
// standing on from. The board is read, never written.
func PieceMoves(b *Board, t chess.PieceType, from chess.Coord, colour chess.Colour, hasMoved bool) []chess.BasicMove {
	switch t {
	case chess.Pawn:
		return PawnMoves(b, from, colour, hasMoved)
	case chess.Knight:
		return KnightMoves(b, from, colour)
	case chess.Bishop:
		return DiagonalMoves(b, from, colour)
	case chess.Rook:
		return LinearMoves(b, from, colour)
	case chess.Queen:
		return append(LinearMoves(b, from, colour), DiagonalMoves(b, from, colour)...)
	case chess.King:
		return KingMoves(b, from, colour)
	}
	return nil
}

// LinearMoves returns the moves along the four orthogonal rays from the
// origin, the way a rook moves.
func LinearMoves(b *Board, from chess.Coord, colour chess.Colour) []chess.BasicMove {
	var result []chess.BasicMove
	for _, d := range linearOffsets {
		result = append(result, exploreRay(b, from, d[0], d[1], colour)...)
	}
	return result
}

// DiagonalMoves returns the moves along the four diagonal rays from the
// origin, the way a bishop moves.
func DiagonalMoves(b *Board, from chess.Coord, colour chess.Colour) []chess.BasicMove {
	var result []chess.BasicMove
	for _, d := range diagonalOffsets {
		result = append(result, exploreRay(b, from, d[0], d[1], colour)...)
	}
	return result
}

// exploreRay walks one square at a time in direction (dx, dy). Empty squares
// become quiet moves, the first opponent piece becomes a capture and stops
// the ray, an own piece or the board edge stops it without a move.
func exploreRay(b *Board, from chess.Coord, dx, dy int, colour chess.Colour) []chess.BasicMove {
	var result []chess.BasicMove
	to := from.Offset(dx, dy)
	for to.Valid() {
		occupant, occupied := b.PieceAt(to)
		if occupied {
			if occupant.Colour != colour {
				result = append(result, chess.NewCapture(to, occupant.Type))
			}
			break
		}
		result = append(result, chess.NewMove(to))
		to = to.Offset(dx, dy)
	}
	return result
}

// stepTo resolves a single-step destination with the usual trichotomy:
// empty gives a quiet move, an opponent piece a capture, an own piece
// nothing. The destination must already be known to lie on the board.
func stepTo(b *Board, to chess.Coord, colour chess.Colour) (chess.BasicMove, bool) {
	occupant, occupied := b.PieceAt(to)
	if occupied {
		if occupant.Colour == colour {
			return chess.BasicMove{}, false
		}
		return chess.NewCapture(to, occupant.Type), true
	}
	return chess.NewMove(to), true
}

// KnightMoves returns the pseudo-legal knight moves from the origin. Each
// of the eight offsets is attempted only if the border distance allows it,
// so destinations never wrap around the board.
func KnightMoves(b *Board, from chess.Coord, colour chess.Colour) []chess.BasicMove {
	dist := from.BorderDistance()
	var result []chess.BasicMove
	for _, o := range knightOffsets {
		if !dist.Fits(o[0], o[1]) {
			continue
		}
		if m, ok := stepTo(b, from.Offset(o[0], o[1]), colour); ok {
			result = append(result, m)
		}
	}
	return result
}

// KingMoves returns the pseudo-legal king moves from the origin: one step
// in each direction, minus any destination the opponent currently
// threatens. The king never generates a move into check. Castling is
// generated separately by CastleMoves.
func KingMoves(b *Board, from chess.Coord, colour chess.Colour) []chess.BasicMove {
	steps := kingSteps(b, from, colour)
	result := steps[:0]
	for _, m := range steps {
		if b.ThreatenedState(m.To).ByColour(colour.Opponent()) == 0 {
			result = append(result, m)
		}
	}
	return result
}

// kingSteps returns the king's single-step moves without the threat filter.
// The threat census uses this variant so that squares only the king reaches
// are still counted as threatened.
func kingSteps(b *Board, from chess.Coord, colour chess.Colour) []chess.BasicMove {
	dist := from.BorderDistance()
	var result []chess.BasicMove
	for _, o := range kingOffsets {
		if !dist.Fits(o[0], o[1]) {
			continue
		}
		if m, ok := stepTo(b, from.Offset(o[0], o[1]), colour); ok {
			result = append(result, m)
		}
	}
	return result
}

// PawnMoves returns the pseudo-legal pawn moves from the origin: a single
// quiet step forward when the square is free, a double step when the pawn
// has never moved and both squares ahead are free, and diagonal captures
// against opponent pieces or the open en passant target. Reaching the
// final rank is handled at commit time, not here.
func PawnMoves(b *Board, from chess.Coord, colour chess.Colour, hasMoved bool) []chess.BasicMove {
	var result []chess.BasicMove
	forward := colour.Forward()

	one := from.Offset(0, forward)
	if one.Valid() {
		if _, occupied := b.PieceAt(one); !occupied {
			result = append(result, chess.NewMove(one))
			two := from.Offset(0, 2*forward)
			if !hasMoved && two.Valid() {
				if _, occupied := b.PieceAt(two); !occupied {
					result = append(result, chess.NewMove(two))
				}
			}
		}
	}

	for _, dx := range [2]int{-1, 1} {
		to := from.Offset(dx, forward)
		if !to.Valid() {
			continue
		}
		if occupant, occupied := b.PieceAt(to); occupied {
			if occupant.Colour != colour {
				result = append(result, chess.NewCapture(to, occupant.Type))
			}
			continue
		}
		if ep := b.EnPassant; ep != nil && ep.Target == to {
			if victim, ok := b.PieceAt(ep.PawnSquare); ok && victim.Colour != colour {
				result = append(result, chess.NewEnPassant(to, ep.PawnSquare))
			}
		}
	}
	return result
}

// PseudoLegalMoves returns the pseudo-legal moves of every piece of one
// colour, one Moves entry per piece that has at least one move.
func PseudoLegalMoves(b *Board, colour chess.Colour) []chess.Moves {
	var result []chess.Moves
	for _, p := range b.pieces {
		if p.OutOfGame || p.Colour != colour {
			continue
		}
		list := PieceMoves(b, p.Type, p.Coord, p.Colour, p.HasMoved)
		if len(list) > 0 {
			result = append(result, chess.Moves{From: p.Coord, List: list})
		}
	}
	return result
}

// AllPseudoLegalMoves returns the pseudo-legal moves of both colours,
// light entries first.
func AllPseudoLegalMoves(b *Board) []chess.Moves {
	result := PseudoLegalMoves(b, chess.Light)
	return append(result, PseudoLegalMoves(b, chess.Dark)...)
}
