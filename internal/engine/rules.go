// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// IsLegalMove returns true if moving the piece on from to to is legal for
// the side to move. It covers piece movement, blocking, captures, castling,
// en passant and check avoidance. Promotion choice is not considered here.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return false
	}
	if from == to {
		return false
	}

	switch piece.Type {
	case chess.Pawn:
		return isLegalPawnMove(board, piece.Colour, from, to)

	case chess.King:
		if CanCastle(board, from, to).Eligible {
			return true
		}
		return IsAttacking(board, from, to) && leavesKingSafe(board, from, to)

	default:
		return IsAttacking(board, from, to) && leavesKingSafe(board, from, to)
	}
}

// AnyLegalMoves returns true if the side to move has at least one legal move.
func AnyLegalMoves(board *chess.Board) bool {
	for _, from := range chess.AllSquares {
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != board.ToMove {
			continue
		}
		for _, to := range chess.AllSquares {
			if IsLegalMove(board, from, to) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every legal move for the side to move, ordered by source
// square then destination square. A pawn reaching the last rank yields one
// move per promotion piece.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, from := range chess.AllSquares {
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != board.ToMove {
			continue
		}
		for _, to := range chess.AllSquares {
			if !IsLegalMove(board, from, to) {
				continue
			}
			if piece.Type == chess.Pawn && to.Rank == piece.Colour.PromotionRank() {
				for _, promo := range promotionPieces {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
				}
				continue
			}
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// leavesKingSafe plays the move on a scratch copy of the squares and
// reports whether the mover's king is out of check afterwards.
func leavesKingSafe(board *chess.Board, from, to chess.Square) bool {
	scratch := board.Scratch()
	mover := scratch.Get(from)

	// A diagonal pawn step onto an empty square is en passant.
	if mover.Type == chess.Pawn && from.File != to.File && scratch.IsEmpty(to) {
		scratch.Set(chess.Square{Rank: from.Rank, File: to.File}, chess.Empty)
	}

	scratch.Set(to, mover)
	scratch.Set(from, chess.Empty)

	return !IsInCheck(scratch, mover.Colour)
}
