package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
// Trailing fields may be omitted: side to move defaults to White, castling
// and en passant to none, the clocks to 0 and 1. An en passant target is
// recorded as the double pawn push that produced it, so the rule keeps
// deriving from the last move.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fenError(fen, "field count", "6 fields", strconv.Itoa(len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, fen, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, fen, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fen, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fen, parts); err != nil {
		return nil, err
	}

	return board, nil
}

func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "piece placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range []byte(row) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pieceType := chess.PieceTypeFromLetter(c)
			if pieceType == chess.NoPiece {
				return fenError(fen, "piece placement", "piece letter", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fenError(fen, "piece placement", "8 files", "rank "+row)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Square{Rank: rank, File: file}, chess.MakePiece(colour, pieceType))
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, "piece placement", "8 files", "rank "+row)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen string, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, fen string, parts []string) error {
	board.Castling = chess.CastleRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fenError(fen, "castling", "KQkq or -", parts[2])
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field and seeds the
// last move with the double push that created it.
func parseEnPassant(board *chess.Board, fen string, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fenError(fen, "en passant", "square or -", parts[3])
	}

	mover := board.ToMove.Opposite()
	if target.Rank != mover.PawnRank()+mover.Forward() {
		return fenError(fen, "en passant", "rank 3 or 6 matching the side to move", parts[3])
	}

	landing := target.Offset(mover.Forward(), 0)
	pawn := chess.MakePiece(mover, chess.Pawn)
	if board.Get(landing) != pawn {
		// No pawn could have made the push; the target carries no information.
		return nil
	}

	board.Last = &chess.MoveRecord{
		From:   target.Offset(-mover.Forward(), 0),
		To:     landing,
		Colour: mover,
		Piece:  pawn,
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fen string, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fenError(fen, "halfmove clock", "number", parts[4])
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fenError(fen, "fullmove number", "positive number", parts[5])
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	c := board.Castling
	if !c.Any() {
		sb.WriteByte('-')
		return
	}
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if last, ok := board.LastMove(); ok && last.IsDoublePawnPush() {
		sb.WriteString(last.PassedSquare().String())
	} else {
		sb.WriteByte('-')
	}
}
