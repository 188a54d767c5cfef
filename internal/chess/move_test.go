package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-referee-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input   string
		want    Square
		wantErr bool
	}{
		{"a1", Square{Rank: 0, File: 0}, false},
		{"h8", Square{Rank: 7, File: 7}, false},
		{"e4", Square{Rank: 3, File: 4}, false},
		{"E4", Square{Rank: 3, File: 4}, false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	for _, sq := range AllSquares {
		back, err := ParseSquare(sq.String())
		if err != nil || back != sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), back, err, sq)
		}
	}
	if got := (Square{Rank: 8, File: 0}).String(); got != "-" {
		t.Errorf("off-board square String() = %q; want \"-\"", got)
	}
}

func TestSquareOffset(t *testing.T) {
	e4 := MustParseSquare("e4")
	if got := e4.Offset(1, 1); got.String() != "f5" {
		t.Errorf("e4.Offset(1, 1) = %v; want f5", got)
	}
	if got := MustParseSquare("h1").Offset(0, 1); got.IsValid() {
		t.Errorf("h1.Offset(0, 1) = %+v; want off board", got)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input     string
		from, to  string
		promotion PieceType
		wantErr   bool
	}{
		{"e2e4", "e2", "e4", NoPiece, false},
		{"  g1f3\n", "g1", "f3", NoPiece, false},
		{"a7a8q", "a7", "a8", Queen, false},
		{"a7a8n", "a7", "a8", Knight, false},
		{"a7a8B", "a7", "a8", Bishop, false},
		{"h2h1r", "h2", "h1", Rook, false},
		{"a7a8x", "a7", "a8", Queen, false},
		{"a7a8k", "a7", "a8", Queen, false},
		{"e2e", "", "", NoPiece, true},
		{"e2e4qq", "", "", NoPiece, true},
		{"z2e4", "", "", NoPiece, true},
		{"e2e9", "", "", NoPiece, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidMove) {
					t.Errorf("ParseMove(%q) error = %v; want ErrInvalidMove", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tt.input, err)
			}
			want := Move{From: MustParseSquare(tt.from), To: MustParseSquare(tt.to), Promotion: tt.promotion}
			if got != want {
				t.Errorf("ParseMove(%q) = %v; want %v", tt.input, got, want)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(MustParseSquare("e2"), MustParseSquare("e4")), "e2e4"},
		{Move{From: MustParseSquare("b7"), To: MustParseSquare("b8"), Promotion: Knight}, "b7b8n"},
		{Move{From: MustParseSquare("b2"), To: MustParseSquare("b1"), Promotion: Queen}, "b2b1q"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestMoveRecord(t *testing.T) {
	push := MoveRecord{
		From:   MustParseSquare("d7"),
		To:     MustParseSquare("d5"),
		Colour: Black,
		Piece:  B(Pawn),
	}
	if !push.IsDoublePawnPush() {
		t.Error("d7d5 not recognised as a double push")
	}
	if got := push.PassedSquare().String(); got != "d6" {
		t.Errorf("PassedSquare() = %s; want d6", got)
	}

	single := MoveRecord{From: MustParseSquare("d7"), To: MustParseSquare("d6"), Piece: B(Pawn)}
	if single.IsDoublePawnPush() {
		t.Error("d7d6 recognised as a double push")
	}

	rook := MoveRecord{From: MustParseSquare("a1"), To: MustParseSquare("a3"), Piece: W(Rook)}
	if rook.IsDoublePawnPush() {
		t.Error("rook move recognised as a double push")
	}

	promo := MoveRecord{From: MustParseSquare("a7"), To: MustParseSquare("a8"), Piece: W(Pawn), Promotion: Rook}
	if got := promo.Move().String(); got != "a7a8r" {
		t.Errorf("Move() = %s; want a7a8r", got)
	}
}
