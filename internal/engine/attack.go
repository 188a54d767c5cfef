package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// IsAttacking reports whether the piece on source threatens target.
// It ignores whose turn it is. A piece never attacks its own square, an
// empty square attacks nothing, and nothing attacks a piece of its own colour.
func IsAttacking(board *chess.Board, source, target chess.Square) bool {
	if source == target {
		return false
	}
	attacker := board.Get(source)
	if attacker.IsEmpty() {
		return false
	}
	if victim := board.Get(target); !victim.IsEmpty() && victim.Colour == attacker.Colour {
		return false
	}
	return canReach(board, attacker, source, target)
}

// IsAttackingExcept is IsAttacking with pieces of the excluded colour
// never counted as attackers.
func IsAttackingExcept(board *chess.Board, source, target chess.Square, excluded chess.Colour) bool {
	if p := board.Get(source); !p.IsEmpty() && p.Colour == excluded {
		return false
	}
	return IsAttacking(board, source, target)
}

// IsSquareAttacked returns true if any piece not of the defender's colour
// attacks the square.
func IsSquareAttacked(board *chess.Board, sq chess.Square, defender chess.Colour) bool {
	for _, source := range chess.AllSquares {
		if IsAttackingExcept(board, source, sq, defender) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour)
}

// canReach checks the attack geometry of a piece from source to target.
func canReach(board *chess.Board, attacker chess.Piece, source, target chess.Square) bool {
	dRank := target.Rank - source.Rank
	dFile := target.File - source.File
	rankDiff, fileDiff := abs(dRank), abs(dFile)

	switch attacker.Type {
	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1

	case chess.Pawn:
		// Capture geometry only; pushes and en passant are movement rules.
		return dRank == attacker.Colour.Forward() && fileDiff == 1

	case chess.Knight:
		return (rankDiff == 1 && fileDiff == 2) || (rankDiff == 2 && fileDiff == 1)

	case chess.Rook:
		return isStraight(dRank, dFile) && isPathClear(board, source, target)

	case chess.Bishop:
		return isDiagonal(dRank, dFile) && isPathClear(board, source, target)

	case chess.Queen:
		if isStraight(dRank, dFile) || isDiagonal(dRank, dFile) {
			return isPathClear(board, source, target)
		}
		return false
	}

	return false
}

func isStraight(dRank, dFile int) bool {
	return dRank == 0 || dFile == 0
}

func isDiagonal(dRank, dFile int) bool {
	return abs(dRank) == abs(dFile)
}

// isPathClear checks that every square strictly between source and target
// is empty. The two squares must share a rank, file or diagonal.
// Adjacent squares have nothing between them and are always clear.
func isPathClear(board *chess.Board, source, target chess.Square) bool {
	stepRank := sign(target.Rank - source.Rank)
	stepFile := sign(target.File - source.File)

	sq := source.Offset(stepRank, stepFile)
	for sq != target {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(stepRank, stepFile)
	}
	return true
}
