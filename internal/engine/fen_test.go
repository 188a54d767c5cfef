package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/testutil"
)

func TestFEN_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial", InitialFEN},
		{"kiwipete", kiwipeteFEN},
		{"position 4", position4FEN},
		{"position 5", position5FEN},
		{"endgame", "8/8/4k3/8/2K5/8/5P2/8 b - - 12 47"},
		{"after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"open game en passant", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
		{"sicilian en passant", "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"},
		{"partial rights", "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 3 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			testutil.AssertEqual(t, BoardToFEN(board), tt.fen)
		})
	}
}

func TestFEN_InitialPosition(t *testing.T) {
	fromFEN := mustFEN(t, InitialFEN)
	initial := chess.NewInitialBoard()

	testutil.AssertEqual(t, fromFEN.Squares, initial.Squares)
	testutil.AssertEqual(t, fromFEN.Castling, initial.Castling)
	testutil.AssertEqual(t, fromFEN.ToMove, initial.ToMove)
	testutil.AssertEqual(t, BoardToFEN(initial), InitialFEN)
}

func TestFEN_AfterMoves(t *testing.T) {
	board := chess.NewInitialBoard()

	play(t, board, "e2e4")
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	play(t, board, "c7c5")
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")

	play(t, board, "g1f3")
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
}

func TestFEN_Defaults(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"placement only", "4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K3 b", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"no clocks", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
		{"extra whitespace", "  4k3/8/8/8/8/8/8/4K3   w  -  -  5  9 ", "4k3/8/8/8/8/8/8/4K3 w - - 5 9"},
		{"en passant without a pawn", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			testutil.AssertEqual(t, BoardToFEN(board), tt.want)
		})
	}
}

func TestFEN_EnPassantSeedsLastMove(t *testing.T) {
	board := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")

	last, ok := board.LastMove()
	testutil.AssertTrue(t, ok, "LastMove after en passant field")
	testutil.AssertEqual(t, last, chess.MoveRecord{
		From:   testutil.Sq(t, "e7"),
		To:     testutil.Sq(t, "e5"),
		Colour: chess.Black,
		Piece:  chess.B(chess.Pawn),
	})
	testutil.AssertEqual(t, len(board.History), 0)
}

func TestFEN_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"too few ranks", "8/8/8 w - - 0 1", "piece placement"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", "piece placement"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", "piece placement"},
		{"nine files", "ppppppppp/8/8/8/8/8/8/4K3 w - - 0 1", "piece placement"},
		{"short rank", "7/8/8/8/8/8/8/4K3 w - - 0 1", "piece placement"},
		{"digit nine", "9/8/8/8/8/8/8/4K3 w - - 0 1", "piece placement"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side to move"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1", "castling"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1", "en passant"},
		{"en passant on the wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", "en passant"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1", "halfmove clock"},
		{"negative halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
		{"seven fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra", "field count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			testutil.AssertNil(t, board)

			if tt.field == "" {
				return
			}
			var parseErr *errors.ParseError
			if !stderrors.As(err, &parseErr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, parseErr.Field, tt.field)
			testutil.AssertEqual(t, parseErr.Input, tt.fen)
		})
	}
}
