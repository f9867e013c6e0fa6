package engine

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// IsLegal reports whether committing the move would leave the mover's own
// king safe. The candidate is committed on a clone of the board, then every
// pseudo-legal reply of the side now to move is tested against the square
// holding the mover's king. One clone per probe makes this expensive;
// it filters chosen moves or move lists, it is not a bulk generator.
func IsLegal(b *Board, from chess.Coord, mv chess.BasicMove) bool {
	mover, ok := b.PieceAt(from)
	if !ok {
		return false
	}

	probe := b.Clone()
	probe.Commit(from, mv)

	king, ok := probe.KingCoord(mover.Colour)
	if !ok {
		return true
	}
	for _, reply := range PseudoLegalMoves(probe, mover.Colour.Opponent()) {
		for _, m := range reply.List {
			if m.To == king {
				return false
			}
		}
	}
	return true
}

// FilterLegal returns the subset of a piece's moves that pass IsLegal.
func FilterLegal(b *Board, moves chess.Moves) chess.Moves {
	result := chess.Moves{From: moves.From}
	for _, m := range moves.List {
		if IsLegal(b, moves.From, m) {
			result.List = append(result.List, m)
		}
	}
	return result
}

// LegalMoves returns the strictly legal moves of a colour, one Moves entry
// per piece that has at least one.
func LegalMoves(b *Board, colour chess.Colour) []chess.Moves {
	var result []chess.Moves
	for _, moves := range PseudoLegalMoves(b, colour) {
		filtered := FilterLegal(b, moves)
		if len(filtered.List) > 0 {
			result = append(result, filtered)
		}
	}
	return result
}
