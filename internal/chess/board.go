package chess

// CastleRights records which castling options remain available.
// Rights are only ever cleared during a game, never restored.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastleRights is the starting castling availability.
var AllCastleRights = CastleRights{true, true, true, true}

// Kingside returns the kingside right for the colour.
func (c CastleRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside returns the queenside right for the colour.
func (c CastleRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Any returns true if any castling right remains.
func (c CastleRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// ClearKingside removes the colour's kingside right.
func (c *CastleRights) ClearKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// ClearQueenside removes the colour's queenside right.
func (c *CastleRights) ClearQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// Clear removes both rights for the colour.
func (c *CastleRights) Clear(colour Colour) {
	c.ClearKingside(colour)
	c.ClearQueenside(colour)
}

// Standard home squares used by castling.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [rank][file].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move. Always the opposite of Last.Colour when Last is set.
	ToMove Colour

	// The current fullmove number.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Remaining castling availability.
	Castling CastleRights

	// Every committed move in order. Append-only.
	History []MoveRecord

	// The most recent move, or nil at the start of a game. A board loaded
	// from FEN with an en passant square gets a synthetic double pawn push here.
	Last *MoveRecord
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.HalfmoveClock = 0
	b.Castling = AllCastleRights
	b.History = nil
	b.Last = nil
}

// Get returns the piece on a square. The square must be on the board.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece on a square. The square must be on the board.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Rank][sq.File] = piece
}

// IsEmpty returns true if nothing stands on the square.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// KingSquare finds the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	for _, sq := range AllSquares {
		if b.Get(sq).Is(colour, King) {
			return sq, true
		}
	}
	return Square{}, false
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (MoveRecord, bool) {
	if b.Last == nil {
		return MoveRecord{}, false
	}
	return *b.Last, true
}

// Copy creates a deep copy of the board, including its history.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.History != nil {
		newBoard.History = make([]MoveRecord, len(b.History))
		copy(newBoard.History, b.History)
	}
	if b.Last != nil {
		last := *b.Last
		newBoard.Last = &last
	}
	return newBoard
}

// Scratch returns a copy holding only the piece placement. It is used to
// simulate a move for check detection without touching counters, rights
// or history.
func (b *Board) Scratch() *Board {
	return &Board{Squares: b.Squares, ToMove: b.ToMove}
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when a private board is explored move by move
// and then rewound (perft, for example).
type BoardState struct {
	Squares       [BoardSize][BoardSize]Piece
	ToMove        Colour
	MoveNumber    uint
	HalfmoveClock uint
	Castling      CastleRights
	HistoryLen    int
	Last          *MoveRecord
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       b.Squares,
		ToMove:        b.ToMove,
		MoveNumber:    b.MoveNumber,
		HalfmoveClock: b.HalfmoveClock,
		Castling:      b.Castling,
		HistoryLen:    len(b.History),
		Last:          b.Last,
	}
}

// RestoreState rewinds the board to a previously saved state, dropping any
// history recorded since. Only use it on a board you own exclusively.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.HalfmoveClock = s.HalfmoveClock
	b.Castling = s.Castling
	if s.HistoryLen <= len(b.History) {
		b.History = b.History[:s.HistoryLen]
	}
	b.Last = s.Last
}

// AllSquares lists every square from a1 to h8, rank by rank.
var AllSquares = func() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			squares = append(squares, Square{Rank: rank, File: file})
		}
	}
	return squares
}()
