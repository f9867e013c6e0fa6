package engine

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// IsInCheck reports whether the given colour's king stands on a square the
// opponent threatens. It reads the census, so it reflects the position as of
// the last committed mutation.
func IsInCheck(b *Board, colour chess.Colour) bool {
	king, ok := b.KingCoord(colour)
	if !ok {
		return false
	}
	return b.ThreatenedState(king).ByColour(colour.Opponent()) > 0
}

// HasLegalMoves reports whether the colour has at least one strictly legal
// move, castling included. It returns as soon as one is found.
func HasLegalMoves(b *Board, colour chess.Colour) bool {
	for _, moves := range PseudoLegalMoves(b, colour) {
		for _, m := range moves.List {
			if IsLegal(b, moves.From, m) {
				return true
			}
		}
	}
	return len(CastleMoves(b, b.CastleRights, colour)) > 0
}

// IsCheckmate reports whether the colour is in check with no legal move.
func IsCheckmate(b *Board, colour chess.Colour) bool {
	return IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}

// IsStalemate reports whether the colour has no legal move while not in
// check.
func IsStalemate(b *Board, colour chess.Colour) bool {
	return !IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}
