// encroissant analyses chess positions: it prints the board, the static
// evaluation and the legal moves of a position, and searches for the best
// move at a fixed depth.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
	"github.com/iuselinuxbtw/EnCroissant/internal/engine"
	"github.com/iuselinuxbtw/EnCroissant/internal/errors"
	"github.com/iuselinuxbtw/EnCroissant/internal/hashing"
	"github.com/iuselinuxbtw/EnCroissant/internal/search"
)

const programVersion = "0.1.0"

var (
	fen       = flag.String("fen", engine.InitialFEN, "position to analyse, as a FEN record")
	depth     = flag.Int("depth", 3, "search depth in plies")
	listMoves = flag.Bool("moves", false, "list the legal moves of the side to move")
	noSearch  = flag.Bool("no-search", false, "skip the best-move search")
	selfPlay  = flag.Int("selfplay", 0, "play this many half-moves from the position and report the outcome")
	version   = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("encroissant version %s\n", programVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "encroissant: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	b, err := engine.ParseFEN(*fen)
	if err != nil {
		return err
	}

	fmt.Print(b)
	fmt.Printf("\n%s to move, evaluation %+d\n", b.ToMove, engine.Evaluate(b))
	reportStatus(b)

	if *listMoves {
		printLegalMoves(b)
	}

	if *selfPlay > 0 {
		return playOut(b, *selfPlay, *depth)
	}

	if !*noSearch {
		result, err := search.BestMove(context.Background(), b, *depth)
		if stderrors.Is(err, errors.ErrNoLegalMoves) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("best move: %s (score %+d)\n", describeMove(b, result.From, result.Move), result.Score)
	}
	return nil
}

// playOut lets the engine play against itself for at most plies half-moves,
// stopping early on checkmate, stalemate, threefold repetition or the
// fifty-move rule.
func playOut(b *engine.Board, plies, depth int) error {
	tracker := hashing.NewRepetitionTracker()
	tracker.Record(b)

	for i := 0; i < plies; i++ {
		result, err := search.BestMove(context.Background(), b, depth)
		if stderrors.Is(err, errors.ErrNoLegalMoves) {
			switch {
			case engine.IsCheckmate(b, b.ToMove):
				fmt.Printf("%s is checkmated\n", b.ToMove)
			case engine.IsStalemate(b, b.ToMove):
				fmt.Printf("%s is stalemated\n", b.ToMove)
			default:
				fmt.Printf("%s has no moves to play\n", b.ToMove)
			}
			return nil
		}
		if err != nil {
			return err
		}

		mover := b.ToMove
		fmt.Printf("%3d. %s %s\n", b.MoveNumber, mover, describeMove(b, result.From, result.Move))
		b.Commit(result.From, result.Move)

		if tracker.Record(b) >= 3 {
			fmt.Println("draw by threefold repetition")
			return nil
		}
		if b.HalfmoveClock >= 100 {
			fmt.Println("draw by the fifty-move rule")
			return nil
		}
	}

	fmt.Printf("\n%s\nfinal position: %s\n", b, b.FEN())
	return nil
}

// reportStatus prints check, checkmate or stalemate for the side to move.
func reportStatus(b *engine.Board) {
	switch {
	case engine.IsCheckmate(b, b.ToMove):
		fmt.Printf("%s is checkmated\n", b.ToMove)
	case engine.IsStalemate(b, b.ToMove):
		fmt.Printf("%s is stalemated\n", b.ToMove)
	case engine.IsInCheck(b, b.ToMove):
		fmt.Printf("%s is in check\n", b.ToMove)
	}
}

func printLegalMoves(b *engine.Board) {
	for _, moves := range engine.LegalMoves(b, b.ToMove) {
		for _, m := range moves.List {
			fmt.Println(describeMove(b, moves.From, m))
		}
	}
	for _, castle := range engine.CastleMoves(b, b.CastleRights, b.ToMove) {
		fmt.Println(castle)
	}
}

// describeMove renders a move in long algebraic form, e.g. "Ng1-f3" or
// "e4xd5".
func describeMove(b *engine.Board, from chess.Coord, m chess.BasicMove) string {
	letter := ""
	if p, ok := b.PieceAt(from); ok {
		letter = p.Type.Letter()
	}
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%s%s%s%s", letter, from, sep, m.To)
}
