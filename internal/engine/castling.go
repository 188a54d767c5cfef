package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// CastleCheck is the result of a castling eligibility test.
// RookFrom and RookTo are only meaningful when Eligible is true.
type CastleCheck struct {
	Eligible bool
	RookFrom chess.Square
	RookTo   chess.Square
}

// Destination files for the king and rook after castling.
const (
	kingsideKingFile  = 6
	kingsideRookTo    = 5
	queensideKingFile = 2
	queensideRookTo   = 3
)

// CanCastle checks whether moving the king on from to to is a legal castle.
// The king must stand on its home square with the matching right still
// held and its rook at home. Every square between king and rook must be
// empty. The king may not be in check, pass through an attacked square or
// land on one.
func CanCastle(board *chess.Board, from, to chess.Square) CastleCheck {
	king := board.Get(from)
	if king.Type != chess.King {
		return CastleCheck{}
	}
	colour := king.Colour
	home := colour.HomeRank()
	if from != (chess.Square{Rank: home, File: chess.KingFile}) || to.Rank != home {
		return CastleCheck{}
	}

	var rookFile, rookToFile int
	switch to.File {
	case kingsideKingFile:
		if !board.Castling.Kingside(colour) {
			return CastleCheck{}
		}
		rookFile, rookToFile = chess.KingsideRookFile, kingsideRookTo
	case queensideKingFile:
		if !board.Castling.Queenside(colour) {
			return CastleCheck{}
		}
		rookFile, rookToFile = chess.QueensideRookFile, queensideRookTo
	default:
		return CastleCheck{}
	}

	rookFrom := chess.Square{Rank: home, File: rookFile}
	if !board.Get(rookFrom).Is(colour, chess.Rook) {
		return CastleCheck{}
	}

	step := sign(rookFile - chess.KingFile)
	for file := chess.KingFile + step; file != rookFile; file += step {
		if !board.IsEmpty(chess.Square{Rank: home, File: file}) {
			return CastleCheck{}
		}
	}

	if IsInCheck(board, colour) {
		return CastleCheck{}
	}
	for file := chess.KingFile + step; ; file += step {
		if IsSquareAttacked(board, chess.Square{Rank: home, File: file}, colour) {
			return CastleCheck{}
		}
		if file == to.File {
			break
		}
	}

	return CastleCheck{
		Eligible: true,
		RookFrom: rookFrom,
		RookTo:   chess.Square{Rank: home, File: rookToFile},
	}
}

// clearRookRight removes the castling right tied to a rook standing on its
// home square. It is called when such a rook moves away or is captured.
func clearRookRight(board *chess.Board, rook chess.Piece, sq chess.Square) {
	if rook.Type != chess.Rook || sq.Rank != rook.Colour.HomeRank() {
		return
	}
	switch sq.File {
	case chess.KingsideRookFile:
		board.Castling.ClearKingside(rook.Colour)
	case chess.QueensideRookFile:
		board.Castling.ClearQueenside(rook.Colour)
	}
}
