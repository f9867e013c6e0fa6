// Package hashing provides Zobrist hashing of board positions and
// repetition tracking built on those hashes.
package hashing

import (
	"math/rand"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
)

// Zobrist key material. The keys are drawn once from a fixed seed so that
// hashes are stable across runs.
var (
	pieceKeys  [6][2][chess.BoardSize][chess.BoardSize]uint64
	darkToMove uint64
	castleKeys [4]uint64
	epFileKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5ec7e7))
	for t := range pieceKeys {
		for c := range pieceKeys[t] {
			for x := range pieceKeys[t][c] {
				for y := range pieceKeys[t][c][x] {
					pieceKeys[t][c][x][y] = rng.Uint64()
				}
			}
		}
	}
	darkToMove = rng.Uint64()
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// Position returns the Zobrist hash of a board. Two boards hash equal when
// they agree on piece placement, side to move, castle rights and the open
// en passant file; clocks and move numbers are ignored.
func Position(b *engine.Board) uint64 {
	var hash uint64
	for _, p := range b.Pieces() {
		hash ^= pieceKeys[p.Type][p.Colour][p.Coord.X][p.Coord.Y]
	}
	if b.ToMove == chess.Dark {
		hash ^= darkToMove
	}
	for i, allowed := range [4]bool{
		b.CastleRights.LightKingSide,
		b.CastleRights.LightQueenSide,
		b.CastleRights.DarkKingSide,
		b.CastleRights.DarkQueenSide,
	} {
		if allowed {
			hash ^= castleKeys[i]
		}
	}
	if b.EnPassant != nil {
		hash ^= epFileKeys[b.EnPassant.Target.X]
	}
	return hash
}
