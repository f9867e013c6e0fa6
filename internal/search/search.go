// Package search implements a fixed-depth negamax search over the engine's
// legal move generator. The root moves are scored in parallel, one cloned
// board per candidate; below the root the search is sequential.
package search

import (
	"context"
	"runtime"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
	"github.com/iuselinuxbtw/EnCroissant/internal/errors"
)

// mateScore is the magnitude assigned to a checkmated position. Deeper mates
// score closer to zero, so the search prefers the shortest mate it can see.
const mateScore = 100000

// Result is the move the search settled on and its score from the point of
// view of the side that moves it.
type Result struct {
	From  chess.Coord
	Move  chess.BasicMove
	Score int
}

// candidate is one root move under consideration.
type candidate struct {
	from chess.Coord
	move chess.BasicMove
}

// BestMove searches the position to the given depth and returns the best
// move for the side to move. It returns ErrNoLegalMoves when that side has
// no legal basic move. Castling is not among the candidates; callers that
// want to castle consult engine.CastleMoves directly.
func BestMove(ctx context.Context, b *engine.Board, depth int) (Result, error) {
	colour := b.ToMove
	candidates := flatten(engine.LegalMoves(b, colour))
	if len(candidates) == 0 {
		return Result{}, errors.ErrNoLegalMoves
	}
	orderCaptures(candidates)

	scores := make([]int, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			probe := b.Clone()
			probe.Commit(c.from, c.move)
			scores[i] = -negamax(probe, depth-1, colour.Opponent())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return Result{
		From:  candidates[best].from,
		Move:  candidates[best].move,
		Score: scores[best],
	}, nil
}

// negamax scores the position for the given colour: its own best score
// assuming the opponent answers with their own best score, negated at each
// ply. At depth zero the static evaluation decides.
func negamax(b *engine.Board, depth int, colour chess.Colour) int {
	if depth <= 0 {
		return staticScore(b, colour)
	}

	candidates := flatten(engine.LegalMoves(b, colour))
	if len(candidates) == 0 {
		if engine.IsInCheck(b, colour) {
			return -(mateScore + depth)
		}
		return 0
	}
	orderCaptures(candidates)

	best := -(mateScore * 2)
	for _, c := range candidates {
		probe := b.Clone()
		probe.Commit(c.from, c.move)
		if score := -negamax(probe, depth-1, colour.Opponent()); score > best {
			best = score
		}
	}
	return best
}

// staticScore maps the light-positive evaluation onto the colour's own
// point of view.
func staticScore(b *engine.Board, colour chess.Colour) int {
	score := engine.Evaluate(b)
	if colour == chess.Dark {
		score = -score
	}
	return score
}

// flatten turns per-piece move lists into a single candidate list.
func flatten(moves []chess.Moves) []candidate {
	var result []candidate
	for _, m := range moves {
		for _, mv := range m.List {
			result = append(result, candidate{from: m.From, move: mv})
		}
	}
	return result
}

// orderCaptures sorts candidates so the most valuable captures come first.
// The sort is stable, so quiet moves keep their generation order.
func orderCaptures(candidates []candidate) {
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return captureValue(b) - captureValue(a)
	})
}

func captureValue(c candidate) int {
	if c.move.Capture == nil {
		return 0
	}
	return c.move.Capture.PieceType.Value()
}
