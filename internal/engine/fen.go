package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iuselinuxbtw/EnCroissant/internal/chess"
	"github.com/iuselinuxbtw/EnCroissant/internal/errors"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceLetter returns the upper-case FEN letter of a piece type.
func pieceLetter(t chess.PieceType) byte {
	switch t {
	case chess.Pawn:
		return 'P'
	case chess.Knight:
		return 'N'
	case chess.Bishop:
		return 'B'
	case chess.Rook:
		return 'R'
	case chess.Queen:
		return 'Q'
	case chess.King:
		return 'K'
	}
	return '?'
}

// pieceFromLetter resolves a FEN piece letter into type and colour. Upper
// case is light, lower case dark.
func pieceFromLetter(ch byte) (chess.PieceType, chess.Colour, bool) {
	colour := chess.Light
	if ch >= 'a' && ch <= 'z' {
		colour = chess.Dark
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return chess.Pawn, colour, true
	case 'N':
		return chess.Knight, colour, true
	case 'B':
		return chess.Bishop, colour, true
	case 'R':
		return chess.Rook, colour, true
	case 'Q':
		return chess.Queen, colour, true
	case 'K':
		return chess.King, colour, true
	}
	return 0, 0, false
}

// ParseFEN builds a board from a FEN record. All six fields are required.
// The returned board has its threat census computed and is ready for move
// generation.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "expected 6 fields, got %d", len(fields))
	}

	b := NewBoard()
	b.CastleRights = chess.CastleRights{}

	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.ToMove = chess.Light
	case "b":
		b.ToMove = chess.Dark
	default:
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad side to move %q", fields[1])
	}

	if err := parseCastleRights(b, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(b, fields[3]); err != nil {
		return nil, err
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad halfmove clock %q", fields[4])
	}
	b.HalfmoveClock = halfmove

	moveNumber, err := strconv.Atoi(fields[5])
	if err != nil || moveNumber < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad move number %q", fields[5])
	}
	b.MoveNumber = moveNumber

	b.RecomputeThreats()
	return b, nil
}

// parsePlacement fills the board from the piece placement field, rank 8
// first. Pawns found off their home rank are marked as having moved, so
// they no longer offer the double step.
func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "expected 8 ranks, got %d", len(ranks))
	}
	for i, rank := range ranks {
		y := chess.BoardSize - 1 - i
		x := 0
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			t, colour, ok := pieceFromLetter(ch)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidFEN, "bad piece letter %q", ch)
			}
			if x >= chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", y+1)
			}
			p := BoardPiece{Type: t, Colour: colour, Coord: chess.NewCoord(x, y)}
			if t == chess.Pawn && y != pawnHomeRank(colour) {
				p.HasMoved = true
			}
			b.AddPiece(p)
			x++
		}
		if x != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d squares", y+1, x)
		}
	}
	return nil
}

func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.Light {
		return 1
	}
	return chess.BoardSize - 2
}

func parseCastleRights(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			b.CastleRights.LightKingSide = true
		case 'Q':
			b.CastleRights.LightQueenSide = true
		case 'k':
			b.CastleRights.DarkKingSide = true
		case 'q':
			b.CastleRights.DarkQueenSide = true
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "bad castle rights %q", field)
		}
	}
	return nil
}

// parseEnPassant reads the en passant target square and derives the square
// of the double-stepped pawn from it: a target on rank 3 means a light pawn
// on rank 4, a target on rank 6 a dark pawn on rank 5.
func parseEnPassant(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	target, err := parseSquare(field)
	if err != nil {
		return err
	}
	var pawn chess.Coord
	switch target.Y {
	case 2:
		pawn = chess.NewCoord(target.X, 3)
	case 5:
		pawn = chess.NewCoord(target.X, 4)
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant target %s off ranks 3 and 6", field)
	}
	b.EnPassant = &chess.EnPassant{Target: target, PawnSquare: pawn}
	return nil
}

func parseSquare(s string) (chess.Coord, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.Coord{}, errors.Wrapf(errors.ErrInvalidFEN, "bad square %q", s)
	}
	return chess.NewCoord(int(s[0]-'a'), int(s[1]-'1')), nil
}

// FEN renders the position as a six-field FEN record.
func (b *Board) FEN() string {
	var sb strings.Builder

	for y := chess.BoardSize - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			p, ok := b.PieceAt(chess.NewCoord(x, y))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pieceLetter(p.Type)
			if p.Colour == chess.Dark {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	if b.ToMove == chess.Light {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString(castleRightsField(b.CastleRights))

	if b.EnPassant != nil {
		fmt.Fprintf(&sb, " %s", b.EnPassant.Target)
	} else {
		sb.WriteString(" -")
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.MoveNumber)
	return sb.String()
}

func castleRightsField(r chess.CastleRights) string {
	if !r.Any() {
		return "-"
	}
	var sb strings.Builder
	if r.LightKingSide {
		sb.WriteByte('K')
	}
	if r.LightQueenSide {
		sb.WriteByte('Q')
	}
	if r.DarkKingSide {
		sb.WriteByte('k')
	}
	if r.DarkQueenSide {
		sb.WriteByte('q')
	}
	return sb.String()
}
