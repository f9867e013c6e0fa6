package engine_test

import (
	"testing"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
	"github.com/iuselinuxbtw/EnCroissant/internal/testutil"
)

// destinations collects the target squares of a move list.
func destinations(moves []chess.BasicMove) []chess.Coord {
	var result []chess.Coord
	for _, m := range moves {
		result = append(result, m.To)
	}
	return result
}

func countMoves(moves []chess.Moves) int {
	total := 0
	for _, m := range moves {
		total += len(m.List)
	}
	return total
}

func TestStartingPositionMoveCount(t *testing.T) {
	b := engine.NewInitialBoard()

	for _, colour := range []chess.Colour{chess.Light, chess.Dark} {
		moves := engine.PseudoLegalMoves(b, colour)
		testutil.AssertEqual(t, len(moves), 10, "%v pieces with moves", colour)
		testutil.AssertEqual(t, countMoves(moves), 20, "%v move total", colour)
	}

	testutil.AssertEqual(t, countMoves(engine.AllPseudoLegalMoves(b)), 40, "both colours")
}

func TestPawnDoubleStep(t *testing.T) {
	b := engine.NewInitialBoard()

	moves := engine.PawnMoves(b, chess.NewCoord(0, 1), chess.Light, false)
	want := []chess.Coord{chess.NewCoord(0, 2), chess.NewCoord(0, 3)}
	testutil.AssertEqual(t, destinations(moves), want, "a2 pawn")

	// A pawn that has already moved only steps once.
	moved := engine.PawnMoves(b, chess.NewCoord(0, 1), chess.Light, true)
	testutil.AssertEqual(t, destinations(moved), want[:1], "moved pawn")
}

func TestPawnBlocked(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.Pawn, Colour: chess.Light, Coord: chess.NewCoord(4, 1)})
	b.AddPiece(engine.BoardPiece{Type: chess.Knight, Colour: chess.Dark, Coord: chess.NewCoord(4, 2)})
	b.RecomputeThreats()

	moves := engine.PawnMoves(b, chess.NewCoord(4, 1), chess.Light, false)
	testutil.AssertEqual(t, len(moves), 0, "blocked pawn has no forward moves")
}

func TestPawnCaptures(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.Pawn, Colour: chess.Light, Coord: chess.NewCoord(4, 3)})
	b.AddPiece(engine.BoardPiece{Type: chess.Knight, Colour: chess.Dark, Coord: chess.NewCoord(3, 4)})
	b.AddPiece(engine.BoardPiece{Type: chess.Bishop, Colour: chess.Light, Coord: chess.NewCoord(5, 4)})
	b.RecomputeThreats()

	moves := engine.PawnMoves(b, chess.NewCoord(4, 3), chess.Light, true)
	want := []chess.BasicMove{
		chess.NewMove(chess.NewCoord(4, 4)),
		chess.NewCapture(chess.NewCoord(3, 4), chess.Knight),
	}
	testutil.AssertEqual(t, moves, want, "push and capture, own piece untouchable")
}

func TestPawnEnPassant(t *testing.T) {
	b := testutil.MustParseFEN(t, "k7/8/8/3pP3/8/8/8/K7 w - d6 0 1")

	moves := engine.PawnMoves(b, chess.NewCoord(4, 4), chess.Light, true)
	want := []chess.BasicMove{
		chess.NewMove(chess.NewCoord(4, 5)),
		chess.NewEnPassant(chess.NewCoord(3, 5), chess.NewCoord(3, 4)),
	}
	testutil.AssertEqual(t, moves, want, "en passant takes the pawn beside, not the target square")
}

func TestRookRays(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.Rook, Colour: chess.Light, Coord: chess.NewCoord(3, 3)})
	b.RecomputeThreats()

	open := engine.LinearMoves(b, chess.NewCoord(3, 3), chess.Light)
	testutil.AssertEqual(t, len(open), 14, "open rook covers the full rank and file")

	// A friendly piece stops the ray before it, an enemy piece on it.
	b.AddPiece(engine.BoardPiece{Type: chess.Pawn, Colour: chess.Light, Coord: chess.NewCoord(3, 5)})
	b.AddPiece(engine.BoardPiece{Type: chess.Pawn, Colour: chess.Dark, Coord: chess.NewCoord(5, 3)})
	b.RecomputeThreats()

	blocked := engine.LinearMoves(b, chess.NewCoord(3, 3), chess.Light)
	testutil.AssertEqual(t, len(blocked), 10, "blocked rays stop early")

	captures := 0
	for _, m := range blocked {
		if m.IsCapture() {
			captures++
			testutil.AssertEqual(t, m.To, chess.NewCoord(5, 3), "capture square")
			testutil.AssertEqual(t, m.Capture.PieceType, chess.Pawn, "captured type")
		}
	}
	testutil.AssertEqual(t, captures, 1, "one capture")
}

func TestBishopRays(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.Bishop, Colour: chess.Light, Coord: chess.NewCoord(0, 0)})
	b.RecomputeThreats()

	moves := engine.DiagonalMoves(b, chess.NewCoord(0, 0), chess.Light)
	testutil.AssertEqual(t, len(moves), 7, "corner bishop runs one diagonal")
}

func TestQueenCombinesRays(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.Queen, Colour: chess.Light, Coord: chess.NewCoord(3, 3)})
	b.RecomputeThreats()

	moves := engine.PieceMoves(b, chess.Queen, chess.NewCoord(3, 3), chess.Light, true)
	testutil.AssertEqual(t, len(moves), 27, "open queen covers rank, file and both diagonals")
}

func TestKnightAtCorner(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.Knight, Colour: chess.Light, Coord: chess.NewCoord(0, 0)})
	b.RecomputeThreats()

	moves := engine.KnightMoves(b, chess.NewCoord(0, 0), chess.Light)
	got := destinations(moves)
	want := []chess.Coord{chess.NewCoord(1, 2), chess.NewCoord(2, 1)}
	if len(got) != 2 {
		t.Fatalf("corner knight moves = %v, want %v", got, want)
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
			}
		}
		if !found {
			t.Errorf("corner knight should reach %v, got %v", w, got)
		}
	}
}

func TestKingAvoidsThreatenedSquares(t *testing.T) {
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.King, Colour: chess.Light, Coord: chess.NewCoord(4, 0)})
	b.AddPiece(engine.BoardPiece{Type: chess.Rook, Colour: chess.Dark, Coord: chess.NewCoord(3, 7)})
	b.AddPiece(engine.BoardPiece{Type: chess.King, Colour: chess.Dark, Coord: chess.NewCoord(0, 7)})
	b.RecomputeThreats()

	moves := engine.KingMoves(b, chess.NewCoord(4, 0), chess.Light)
	for _, m := range moves {
		if m.To.X == 3 {
			t.Errorf("king stepped onto the threatened d-file: %v", m.To)
		}
	}
	testutil.AssertEqual(t, len(moves), 3, "e2, f1 and f2 remain")
}

func TestThreatCensusCountsKingStepsUnfiltered(t *testing.T) {
	// Kings two files apart: the square between them is counted for both
	// colours even though neither king may legally step there.
	b := engine.NewBoard()
	b.AddPiece(engine.BoardPiece{Type: chess.King, Colour: chess.Light, Coord: chess.NewCoord(0, 0)})
	b.AddPiece(engine.BoardPiece{Type: chess.King, Colour: chess.Dark, Coord: chess.NewCoord(2, 0)})
	b.RecomputeThreats()

	state := b.ThreatenedState(chess.NewCoord(1, 0))
	testutil.AssertEqual(t, state, chess.ThreatenedState{Light: 1, Dark: 1}, "b1 census")

	moves := engine.KingMoves(b, chess.NewCoord(0, 0), chess.Light)
	testutil.AssertEqual(t, destinations(moves), []chess.Coord{chess.NewCoord(0, 1)}, "only a2 is safe")
}

func TestPseudoLegalMovesSkipsStuckPieces(t *testing.T) {
	b := engine.NewInitialBoard()
	moves := engine.PseudoLegalMoves(b, chess.Light)
	for _, m := range moves {
		if len(m.List) == 0 {
			t.Errorf("piece on %v listed with no moves", m.From)
		}
		if p, _ := b.PieceAt(m.From); p.Type == chess.Rook || p.Type == chess.Bishop ||
			p.Type == chess.Queen || p.Type == chess.King {
			t.Errorf("%v on %v should have no moves at the start", p.Type, m.From)
		}
	}
}

func BenchmarkPseudoLegalMoves(b *testing.B) {
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.PseudoLegalMoves(board, chess.Light)
	}
}

func BenchmarkRecomputeThreats(b *testing.B) {
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.RecomputeThreats()
	}
}
