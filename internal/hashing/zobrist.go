package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
)

// Fixed so that keys are stable between runs.
const zobristSeed = 0x2545F4914F6CDD1D

const numSquares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys     [2][chess.NumPieceTypes][numSquares]uint64
	sideKey       uint64
	castleKeys    [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for pieceType := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][pieceType] {
				pieceKeys[colour][pieceType][sq] = r.Uint64()
			}
		}
	}
	sideKey = r.Uint64()
	for i := range castleKeys {
		castleKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// GenerateZobristHash computes the Zobrist key of a position: the piece
// placement, the side to move, the castling rights and, when an en passant
// capture is actually available, the file of the capturable pawn.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64

	for _, sq := range chess.AllSquares {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		hash ^= pieceKeys[piece.Colour][piece.Type][sq.Rank*chess.BoardSize+sq.File]
	}

	if board.ToMove == chess.White {
		hash ^= sideKey
	}

	c := board.Castling
	for i, right := range []bool{c.WhiteKingside, c.WhiteQueenside, c.BlackKingside, c.BlackQueenside} {
		if right {
			hash ^= castleKeys[i]
		}
	}

	if file, ok := enPassantFile(board); ok {
		hash ^= enPassantKeys[file]
	}

	return hash
}

// enPassantFile returns the file of a pawn the side to move can capture en
// passant right now. A double push with no capturing pawn beside it does
// not change the position for repetition purposes.
func enPassantFile(board *chess.Board) (int, bool) {
	last, ok := board.LastMove()
	if !ok || !last.IsDoublePawnPush() {
		return 0, false
	}
	target := last.PassedSquare()
	for _, df := range []int{-1, 1} {
		from := last.To.Offset(0, df)
		if !from.IsValid() || !board.Get(from).Is(board.ToMove, chess.Pawn) {
			continue
		}
		if engine.IsLegalMove(board, from, target) {
			return last.To.File, true
		}
	}
	return 0, false
}

// WeakHash is a cheap checksum of the piece placement only. It is stored
// next to the Zobrist key to tell apart the rare positions whose keys collide.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for i, sq := range chess.AllSquares {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		hash = hash*31 + uint32(piece.Letter())*uint32(i+1)
	}
	return hash
}
