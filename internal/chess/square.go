package chess

import (
	"fmt"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Square is a board coordinate. Rank and File are zero-based:
// Rank 0 is White's back rank, File 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Text form bases for squares.
const (
	FileBase = 'a'
	RankBase = '1'
)

// Sq builds a square from its file letter and rank digit, e.g. Sq('e', '4').
// Characters outside a-h / 1-8 produce an invalid square.
func Sq(file, rank byte) Square {
	return Square{Rank: int(rank) - RankBase, File: int(file) - FileBase}
}

// IsValid returns true if the square lies on the board.
func (s Square) IsValid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square shifted by the given rank and file deltas.
// The result may be off the board; check IsValid.
func (s Square) Offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// String returns the algebraic name of the square ("e4").
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// FileLetter returns the file letter of the square.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File)
}

// RankDigit returns the rank digit of the square.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank)
}

// ParseSquare converts algebraic text ("e4") to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	sq := Sq(lower(text[0]), text[1])
	if !sq.IsValid() {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// lower folds an ASCII letter to lowercase.
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
