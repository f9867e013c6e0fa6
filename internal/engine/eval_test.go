package engine_test

import (
	"testing"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
	"github.com/iuselinuxbtw/EnCroissant/internal/testutil"
)

func TestInitialPositionIsBalanced(t *testing.T) {
	b := engine.NewInitialBoard()
	testutil.AssertEqual(t, engine.Evaluate(b), 0, "symmetric position scores zero")
}

func TestMaterialAdvantage(t *testing.T) {
	// Dark is missing a knight.
	b := testutil.MustParseFEN(t, "r1bqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w kq - 0 1")
	if score := engine.Evaluate(b); score <= 0 {
		t.Errorf("light up a knight should score positive, got %d", score)
	}

	// Mirror it: light is missing a rook.
	b = testutil.MustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1")
	if score := engine.Evaluate(b); score >= 0 {
		t.Errorf("light down a rook should score negative, got %d", score)
	}
}

func TestEvaluationRewardsActivity(t *testing.T) {
	// Identical material, but the light queen is developed while dark
	// has barely moved. Light should control more of the board.
	b := testutil.MustParseFEN(t, "rnbqkbnr/pppppppp/8/8/3Q4/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	mirror := testutil.MustParseFEN(t, "rnb1kbnr/pppppppp/8/3q4/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	light := engine.Evaluate(b)
	dark := engine.Evaluate(mirror)
	if light <= 0 {
		t.Errorf("active light queen should score positive, got %d", light)
	}
	testutil.AssertEqual(t, dark, -light, "mirrored positions score opposite")
}

func TestCaptureSwingsTheScore(t *testing.T) {
	b := testutil.MustParseFEN(t, "k7/8/8/8/3q4/8/3R4/K7 w - - 0 1")
	before := engine.Evaluate(b)

	b.Commit(chess.NewCoord(3, 1), chess.NewCapture(chess.NewCoord(3, 3), chess.Queen))
	after := engine.Evaluate(b)

	if after <= before {
		t.Errorf("winning the queen should raise the score, before %d after %d", before, after)
	}
	if after <= 0 {
		t.Errorf("rook and king against bare king should score positive, got %d", after)
	}
}
