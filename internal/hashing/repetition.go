package hashing

import (
	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
)

// RepetitionTracker counts how often each position has occurred over the
// course of a game, for threefold-repetition detection. Positions are
// compared by their Zobrist hash, so they repeat when placement, side to
// move, castle rights and en passant state all match.
type RepetitionTracker struct {
	seen map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{seen: make(map[uint64]int)}
}

// Record adds the board's current position and returns how many times it
// has now occurred.
func (r *RepetitionTracker) Record(b *engine.Board) int {
	hash := Position(b)
	r.seen[hash]++
	return r.seen[hash]
}

// Count returns how often the board's current position has occurred.
func (r *RepetitionTracker) Count(b *engine.Board) int {
	return r.seen[Position(b)]
}

// Threefold reports whether the board's current position has occurred at
// least three times.
func (r *RepetitionTracker) Threefold(b *engine.Board) bool {
	return r.Count(b) >= 3
}

// Reset forgets all recorded positions.
func (r *RepetitionTracker) Reset() {
	r.seen = make(map[uint64]int)
}
