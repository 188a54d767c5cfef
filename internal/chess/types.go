// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the direction pawns advance in rank).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// PromotionRank returns the rank index on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square, or no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
// NoPiece is returned for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// IsPromotionChoice reports whether a pawn may promote to this piece type.
func (p PieceType) IsPromotionChoice() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Piece is a coloured chess piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// Empty is the contents of an unoccupied square.
var Empty = Piece{}

// IsEmpty returns true if the piece value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is returns true if the piece is of the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// Letter returns the FEN letter for the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable form such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return MakePiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return MakePiece(Black, pieceType)
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// OutcomeKind classifies the state of a game.
type OutcomeKind int

const (
	Ongoing OutcomeKind = iota
	Stalemate
	Checkmate
	Resignation
	AgreedDraw
	DrawByRule
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Ongoing:
		return "Ongoing"
	case Stalemate:
		return "Stalemate"
	case Checkmate:
		return "Checkmate"
	case Resignation:
		return "Resignation"
	case AgreedDraw:
		return "AgreedDraw"
	case DrawByRule:
		return "DrawByRule"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a game, or Ongoing.
// Winner is meaningful for Checkmate (the side that delivered mate)
// and Resignation (the side that did not resign).
type Outcome struct {
	Kind   OutcomeKind
	Winner Colour
}

// IsOver returns true unless the game is still in progress.
func (o Outcome) IsOver() bool {
	return o.Kind != Ongoing
}

// IsDecisive returns true if the outcome has a winner.
func (o Outcome) IsDecisive() bool {
	return o.Kind == Checkmate || o.Kind == Resignation
}

// Result returns the PGN-style result string ("1-0", "0-1", "1/2-1/2" or "*").
func (o Outcome) Result() string {
	switch {
	case o.Kind == Ongoing:
		return "*"
	case o.IsDecisive() && o.Winner == White:
		return "1-0"
	case o.IsDecisive():
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// String describes the outcome, e.g. "Checkmate (White wins)".
func (o Outcome) String() string {
	if o.IsDecisive() {
		return o.Kind.String() + " (" + o.Winner.String() + " wins)"
	}
	return o.Kind.String()
}
