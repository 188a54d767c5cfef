package testutil

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// Pieces maps square text ("e1") to the piece standing there.
type Pieces map[string]chess.Piece

// NewBoard builds a board holding only the given pieces, with the given
// side to move and no castling rights. Use it for hand-made positions
// that are awkward to write as FEN.
func NewBoard(t *testing.T, toMove chess.Colour, pieces Pieces) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	b.ToMove = toMove
	for text, piece := range pieces {
		sq, err := chess.ParseSquare(text)
		if err != nil {
			t.Fatalf("bad square in test board: %v", err)
		}
		b.Set(sq, piece)
	}
	return b
}

// Sq parses square text, failing the test on malformed input.
func Sq(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad square %q: %v", text, err)
	}
	return sq
}

// MustMove parses move text, failing the test on malformed input.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return m
}

// MustMoves parses a sequence of move texts.
func MustMoves(t *testing.T, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, len(texts))
	for i, text := range texts {
		moves[i] = MustMove(t, text)
	}
	return moves
}
