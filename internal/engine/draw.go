package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// Half-move clock thresholds for the move-count draw rules.
const (
	FiftyMoveLimit       = 100
	SeventyFiveMoveLimit = 150
)

// DrawRuleResult contains the results of draw rule detection for a position.
// Repetition depends on the game's history and is tracked by the session.
type DrawRuleResult struct {
	// FiftyMoveRule is true if 50 moves (100 half-moves) have been made
	// without a pawn move or capture. A player may claim the draw.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is true after 75 moves (150 half-moves) without a
	// pawn move or capture. The game is drawn without a claim.
	SeventyFiveMoveRule bool

	// InsufficientMaterial is true if neither side can possibly mate.
	InsufficientMaterial bool
}

// AnalyzeDrawRules checks the position-only draw conditions.
func AnalyzeDrawRules(board *chess.Board) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        IsFiftyMoveDraw(board),
		SeventyFiveMoveRule:  IsSeventyFiveMoveDraw(board),
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
}

// IsFiftyMoveDraw returns true if the fifty-move rule can be claimed.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// IsSeventyFiveMoveDraw returns true if the seventy-five-move rule applies.
func IsSeventyFiveMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= SeventyFiveMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, sq := range chess.AllSquares {
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Type == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Type)
			if piece.Type == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Type)
			if piece.Type == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File+sq.Rank)%2 == 1
}
