package engine

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/testutil"
)

// Standard perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	castlingFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

// mustFEN loads a position or fails the test.
func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// play applies each move in turn, failing the test on the first one rejected.
func play(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := ApplyMove(board, testutil.MustMove(t, text)); err != nil {
			t.Fatalf("ApplyMove(%s) failed: %v", text, err)
		}
	}
}

// legal reports IsLegalMove for move text.
func legal(t *testing.T, board *chess.Board, text string) bool {
	t.Helper()
	m := testutil.MustMove(t, text)
	return IsLegalMove(board, m.From, m.To)
}

// moveTexts renders moves as long algebraic text.
func moveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}
