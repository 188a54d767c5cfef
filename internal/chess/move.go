package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Move is a proposed move: a source and destination square plus an optional
// promotion piece (NoPiece when none). Player input and engine replies share
// this shape.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the long algebraic (UCI) text of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoPiece {
		sb.WriteByte(MakePiece(Black, m.Promotion).Letter())
	}
	return sb.String()
}

// ParseMove converts four- or five-character long algebraic text to a move.
// The optional fifth character selects the promotion piece; it is
// case-insensitive and anything other than q, n, b or r becomes a queen.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) < 4 || len(text) > 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = promotionFromLetter(text[4])
	}
	return m, nil
}

// MustParseMove is like ParseMove but panics on malformed input.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// promotionFromLetter maps a promotion letter to a piece type, defaulting to Queen.
func promotionFromLetter(c byte) PieceType {
	switch lower(c) {
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	default:
		return Queen
	}
}

// MoveRecord is a committed move as stored in the board history.
type MoveRecord struct {
	From   Square
	To     Square
	Colour Colour

	// The piece as it stood on From before the move (a pawn, even when promoting).
	Piece Piece

	// Whether a piece was captured, including en passant.
	Capture bool

	// The piece promoted to, or NoPiece.
	Promotion PieceType
}

// Move returns the move that produced this record.
func (r MoveRecord) Move() Move {
	return Move{From: r.From, To: r.To, Promotion: r.Promotion}
}

// IsDoublePawnPush returns true if the record is a pawn advancing two ranks.
func (r MoveRecord) IsDoublePawnPush() bool {
	if r.Piece.Type != Pawn {
		return false
	}
	d := r.To.Rank - r.From.Rank
	return d == 2 || d == -2
}

// PassedSquare returns the square a double pawn push skipped over.
func (r MoveRecord) PassedSquare() Square {
	return Square{Rank: (r.From.Rank + r.To.Rank) / 2, File: r.From.File}
}
