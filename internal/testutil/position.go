package testutil

import (
	"testing"

	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
)

// MustParseFEN builds a board from a FEN string and calls t.Fatal if the
// string does not parse. Use this in test setup where a malformed position
// should abort the test.
func MustParseFEN(t *testing.T, fen string) *engine.Board {
	t.Helper()
	b, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test position %q: %v", fen, err)
	}
	return b
}
