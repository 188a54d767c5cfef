package engine

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  castlingFEN,
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		board, _ := NewBoardFromFEN(fen)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		board, _ := NewBoardFromFEN(fen)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				LegalMoves(board)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"KingsideCastle", benchFENs["Castling"], "e1g1"},
		{"QueensideCastle", benchFENs["Castling"], "e1c1"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Promotion", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8q"},
	}

	for _, tc := range cases {
		board, _ := NewBoardFromFEN(tc.fen)
		move := chess.MustParseMove(tc.move)
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ApplyMove(board.Copy(), move)
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	board, _ := NewBoardFromFEN(kiwipeteFEN)
	for i := 0; i < b.N; i++ {
		IsInCheck(board, chess.White)
	}
}

func BenchmarkPerft(b *testing.B) {
	board, _ := NewBoardFromFEN(kiwipeteFEN)
	b.Run("Serial", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Perft(board, 2)
		}
	})
	b.Run("Divide", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			PerftDivide(board, 2, 4)
		}
	})
}
