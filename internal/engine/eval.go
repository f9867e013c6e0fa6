package engine

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// centreSquares are the four squares d4, e4, d5 and e5. Control of them is
// weighed on top of whole-board control.
var centreSquares = [4]chess.Coord{
	{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 4},
}

// Evaluate scores the position from light's point of view: positive favours
// light, negative favours dark, and the starting position scores zero. The
// score is the material difference plus the threat-census difference over
// the centre squares and over the whole board.
func Evaluate(b *Board) int {
	return materialScore(b) + positionScore(b)
}

func materialScore(b *Board) int {
	score := 0
	for _, p := range b.pieces {
		if p.OutOfGame {
			continue
		}
		if p.Colour == chess.Light {
			score += p.Type.Value()
		} else {
			score -= p.Type.Value()
		}
	}
	return score
}

// positionScore sums the census difference light minus dark, once over the
// centre squares and once over all squares, so centre control counts twice.
func positionScore(b *Board) int {
	score := 0
	for _, c := range centreSquares {
		state := b.ThreatenedState(c)
		score += int(state.Light) - int(state.Dark)
	}
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			state := b.threats[x][y]
			score += int(state.Light) - int(state.Dark)
		}
	}
	return score
}
