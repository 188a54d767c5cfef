package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// isLegalPawnMove handles pushes, double pushes, captures and en passant.
func isLegalPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	if !board.IsEmpty(to) {
		return IsAttacking(board, from, to) && leavesKingSafe(board, from, to)
	}

	forward := colour.Forward()
	if to.File == from.File {
		switch to.Rank - from.Rank {
		case forward:
			return leavesKingSafe(board, from, to)
		case 2 * forward:
			if from.Rank != colour.PawnRank() || !board.IsEmpty(from.Offset(forward, 0)) {
				return false
			}
			return leavesKingSafe(board, from, to)
		}
		return false
	}

	return IsEnPassant(board, from, to) && leavesKingSafe(board, from, to)
}

// IsEnPassant returns true if the pawn on from may capture en passant by
// moving to to. The previous move must have been an enemy pawn advancing
// two ranks to a square beside from, and to must be the square it skipped.
func IsEnPassant(board *chess.Board, from, to chess.Square) bool {
	last, ok := board.LastMove()
	if !ok || !last.IsDoublePawnPush() {
		return false
	}

	pawn := board.Get(from)
	if pawn.Type != chess.Pawn || pawn.Colour == last.Colour {
		return false
	}
	if !board.Get(last.To).Is(last.Colour, chess.Pawn) {
		return false
	}
	if from.Rank != last.To.Rank || abs(from.File-last.To.File) != 1 {
		return false
	}

	return to == last.To.Offset(pawn.Colour.Forward(), 0) && board.IsEmpty(to)
}

// CanPromote returns true if the move is a legal pawn move onto the far rank.
// The caller must then supply a promotion piece.
func CanPromote(board *chess.Board, from, to chess.Square) bool {
	pawn := board.Get(from)
	if pawn.Type != chess.Pawn || to.Rank != pawn.Colour.PromotionRank() {
		return false
	}
	return IsLegalMove(board, from, to)
}
