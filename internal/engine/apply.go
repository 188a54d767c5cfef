package engine

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// MakeMove applies a move if it is legal and returns true.
// An illegal move, or a promotion without a valid piece, leaves the board
// untouched and returns false.
func MakeMove(board *chess.Board, move chess.Move) bool {
	return ApplyMove(board, move) == nil
}

// ApplyMove applies a move to the board and updates the board state.
// It returns a *errors.MoveError wrapping ErrIllegalMove or
// ErrPromotionRequired when the move cannot be made; the board is then unchanged.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if !IsLegalMove(board, move.From, move.To) {
		return moveError(board, move, errors.ErrIllegalMove)
	}

	piece := board.Get(move.From)
	if isPromotion(piece, move.To) && !move.Promotion.IsPromotionChoice() {
		return moveError(board, move, errors.ErrPromotionRequired)
	}

	commitMove(board, move)
	return nil
}

// commitMove performs the state transition for a move already known to be legal.
func commitMove(board *chess.Board, move chess.Move) {
	from, to := move.From, move.To
	piece := board.Get(from)
	colour := piece.Colour

	// Decide the special cases before anything on the board changes.
	enPassant := piece.Type == chess.Pawn && IsEnPassant(board, from, to)
	var castle CastleCheck
	if piece.Type == chess.King {
		castle = CanCastle(board, from, to)
	}

	record := chess.MoveRecord{
		From:   from,
		To:     to,
		Colour: colour,
		Piece:  piece,
	}

	if enPassant {
		board.Set(chess.Square{Rank: from.Rank, File: to.File}, chess.Empty)
		record.Capture = true
	}

	if castle.Eligible {
		rook := board.Get(castle.RookFrom)
		board.Set(castle.RookFrom, chess.Empty)
		board.Set(castle.RookTo, rook)
	}

	if captured := board.Get(to); !captured.IsEmpty() {
		record.Capture = true
		clearRookRight(board, captured, to)
	}

	moved := piece
	if isPromotion(piece, to) {
		moved = chess.MakePiece(colour, move.Promotion)
		record.Promotion = move.Promotion
	}
	board.Set(to, moved)
	board.Set(from, chess.Empty)

	if record.Capture || piece.Type == chess.Pawn {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}

	switch piece.Type {
	case chess.King:
		board.Castling.Clear(colour)
	case chess.Rook:
		clearRookRight(board, piece, from)
	}

	board.History = append(board.History, record)
	board.Last = &record
	board.ToMove = colour.Opposite()
}

// isPromotion returns true if the piece is a pawn arriving on its last rank.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Type == chess.Pawn && to.Rank == piece.Colour.PromotionRank()
}

func moveError(board *chess.Board, move chess.Move, err error) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      len(board.History) + 1,
		MoveText: move.String(),
		FEN:      BoardToFEN(board),
	}
}
