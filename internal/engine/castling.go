package engine

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// castleVariants lists the two variants of each colour in generation order:
// queen side first, then king side.
var castleVariants = map[chess.Colour][2]chess.CastleMove{
	chess.Light: {chess.LightQueenSide, chess.LightKingSide},
	chess.Dark:  {chess.DarkQueenSide, chess.DarkKingSide},
}

// CastleMoves returns the castle moves currently available to a colour.
// A variant is offered when its right is intact, the squares strictly
// between king and rook are empty, and no square the king passes through
// or lands on carries an opponent threat. Whether the king is currently
// in check is not tested here; callers that care run the legality filter
// on the resulting position.
func CastleMoves(b *Board, rights chess.CastleRights, colour chess.Colour) []chess.CastleMove {
	var result []chess.CastleMove
	for _, variant := range castleVariants[colour] {
		if !rights.Allows(variant) {
			continue
		}
		if !castlePathClear(b, variant) {
			continue
		}
		if castlePathThreatened(b, variant) {
			continue
		}
		result = append(result, variant)
	}
	return result
}

// castlePathClear reports whether every square strictly between the king
// and the rook of the variant is empty.
func castlePathClear(b *Board, variant chess.CastleMove) bool {
	y := variant.KingFrom().Y
	lo, hi := variant.RookFrom().X, variant.KingFrom().X
	if lo > hi {
		lo, hi = hi, lo
	}
	for x := lo + 1; x < hi; x++ {
		if _, occupied := b.PieceAt(chess.NewCoord(x, y)); occupied {
			return false
		}
	}
	return true
}

// castlePathThreatened reports whether the opponent threatens any square
// the king passes through or lands on.
func castlePathThreatened(b *Board, variant chess.CastleMove) bool {
	opponent := variant.Colour().Opponent()
	from, to := variant.KingFrom(), variant.KingTo()
	step := 1
	if to.X < from.X {
		step = -1
	}
	for x := from.X + step; ; x += step {
		if b.ThreatenedState(chess.NewCoord(x, from.Y)).ByColour(opponent) > 0 {
			return true
		}
		if x == to.X {
			return false
		}
	}
}
