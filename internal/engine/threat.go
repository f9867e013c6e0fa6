package engine

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
)

// RecomputeThreats rebuilds the per-square threat census from scratch. For
// each colour independently it generates the pseudo-legal moves of every
// piece and increments the destination's counter for that colour. King
// moves enter the census unfiltered, so squares only the king could step
// to still count as threatened. The census must be rebuilt after every
// committed mutation; king-move filtering and castling read nothing else.
func (b *Board) RecomputeThreats() {
	b.clearThreats()
	b.addColourThreats(chess.Light)
	b.addColourThreats(chess.Dark)
}

// clearThreats zeroes the census. Mutations call this first so a stale
// census is never observable mid-commit.
func (b *Board) clearThreats() {
	b.threats = [chess.BoardSize][chess.BoardSize]chess.ThreatenedState{}
}

func (b *Board) addColourThreats(colour chess.Colour) {
	for _, p := range b.pieces {
		if p.OutOfGame || p.Colour != colour {
			continue
		}
		var list []chess.BasicMove
		if p.Type == chess.King {
			list = kingSteps(b, p.Coord, p.Colour)
		} else {
			list = PieceMoves(b, p.Type, p.Coord, p.Colour, p.HasMoved)
		}
		for _, m := range list {
			b.addThreat(m.To, colour)
		}
	}
}

func (b *Board) addThreat(c chess.Coord, colour chess.Colour) {
	state := &b.threats[c.X][c.Y]
	if colour == chess.Light {
		state.Light++
	} else {
		state.Dark++
	}
}
