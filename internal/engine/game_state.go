package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// IsGameOver evaluates the position for the side to move.
// It only ever reports Ongoing, Checkmate (won by the other colour) or Stalemate.
func IsGameOver(board *chess.Board) chess.Outcome {
	if AnyLegalMoves(board) {
		return chess.Outcome{Kind: chess.Ongoing}
	}
	if IsInCheck(board, board.ToMove) {
		return chess.Outcome{Kind: chess.Checkmate, Winner: board.ToMove.Opposite()}
	}
	return chess.Outcome{Kind: chess.Stalemate}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !AnyLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !AnyLegalMoves(board)
}
