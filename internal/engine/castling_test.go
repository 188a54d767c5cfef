package engine

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/testutil"
)

func TestCastling_KingsideRoundTrip(t *testing.T) {
	board := mustFEN(t, castlingFEN)

	check := CanCastle(board, testutil.Sq(t, "e1"), testutil.Sq(t, "g1"))
	testutil.AssertEqual(t, check, CastleCheck{
		Eligible: true,
		RookFrom: testutil.Sq(t, "h1"),
		RookTo:   testutil.Sq(t, "f1"),
	})

	play(t, board, "e1g1")

	testutil.AssertPiece(t, board, "g1", chess.W(chess.King))
	testutil.AssertPiece(t, board, "f1", chess.W(chess.Rook))
	testutil.AssertPiece(t, board, "e1", chess.Empty)
	testutil.AssertPiece(t, board, "h1", chess.Empty)
	testutil.AssertEqual(t, BoardToFEN(board), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")
}

func TestCastling_BothColours(t *testing.T) {
	board := mustFEN(t, castlingFEN)

	play(t, board, "e1c1")

	testutil.AssertPiece(t, board, "c1", chess.W(chess.King))
	testutil.AssertPiece(t, board, "d1", chess.W(chess.Rook))
	testutil.AssertFalse(t, legal(t, board, "e8c8"), "d8 is covered by the rook on d1")

	play(t, board, "e8g8")

	testutil.AssertPiece(t, board, "g8", chess.B(chess.King))
	testutil.AssertPiece(t, board, "f8", chess.B(chess.Rook))
	testutil.AssertEqual(t, BoardToFEN(board), "r4rk1/8/8/8/8/8/8/2KR3R w - - 2 2")
}

func TestCastling_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want bool
	}{
		{"baseline kingside", castlingFEN, "e1g1", true},
		{"baseline queenside", castlingFEN, "e1c1", true},
		{"kingside right lost", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1g1", false},
		{"queenside right lost", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", "e1c1", false},
		{"rook missing", "r3k2r/8/8/8/8/8/8/R3K3 w KQkq - 0 1", "e1g1", false},
		{"piece between king and rook", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", "e1g1", false},
		{"knight on b1 blocks queenside", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1c1", false},
		{"transit square attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1g1", false},
		{"other side unaffected by f-file attack", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1c1", true},
		{"landing square attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1g1", false},
		{"b1 attacked does not matter", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", "e1c1", true},
		{"king in check", "r3k2r/8/8/8/4q3/8/8/R3K2R w KQkq - 0 1", "e1g1", false},
		{"king in check queenside", "r3k2r/8/8/8/4q3/8/8/R3K2R w KQkq - 0 1", "e1c1", false},
		{"not a castle destination", castlingFEN, "e1h1", false},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := legal(t, board, tt.move); got != tt.want {
				t.Errorf("IsLegalMove(%s) = %v; want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestCastling_RookMovedAndReturned(t *testing.T) {
	board := mustFEN(t, castlingFEN)

	play(t, board, "h1h2", "a8a7", "h2h1", "a7a8")

	testutil.AssertFalse(t, legal(t, board, "e1g1"), "kingside after rook moved")
	testutil.AssertTrue(t, legal(t, board, "e1c1"), "queenside untouched")
	testutil.AssertEqual(t, BoardToFEN(board), "r3k2r/8/8/8/8/8/8/R3K2R w Qk - 4 3")
}

func TestCastling_KingMovedAndReturned(t *testing.T) {
	board := mustFEN(t, castlingFEN)

	play(t, board, "e1f1", "e8f8", "f1e1", "f8e8")

	testutil.AssertFalse(t, legal(t, board, "e1g1"), "white kingside")
	testutil.AssertFalse(t, legal(t, board, "e1c1"), "white queenside")
	testutil.AssertEqual(t, board.Castling, chess.CastleRights{})
}
