// Package hashing identifies chess positions for repetition detection.
package hashing

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// Occurrence counts at which repetition draws apply.
const (
	ThreefoldCount = 3 // a player may claim a draw
	FivefoldCount  = 5 // the game is drawn automatically
)

// positionKey identifies a position. The weak hash guards against
// Zobrist collisions.
type positionKey struct {
	Hash uint64
	Weak uint32
}

// RepetitionTracker counts how often each position has occurred in a game.
type RepetitionTracker struct {
	counts map[positionKey]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[positionKey]int),
	}
}

func keyOf(board *chess.Board) positionKey {
	return positionKey{
		Hash: GenerateZobristHash(board),
		Weak: WeakHash(board),
	}
}

// Record notes one occurrence of the board's position and returns how many
// times it has now occurred.
func (r *RepetitionTracker) Record(board *chess.Board) int {
	key := keyOf(board)
	r.counts[key]++
	return r.counts[key]
}

// Count returns how many times the board's position has been recorded.
func (r *RepetitionTracker) Count(board *chess.Board) int {
	return r.counts[keyOf(board)]
}

// IsThreefold returns true if the board's position has occurred at least
// three times.
func (r *RepetitionTracker) IsThreefold(board *chess.Board) bool {
	return r.Count(board) >= ThreefoldCount
}

// IsFivefold returns true if the board's position has occurred at least
// five times.
func (r *RepetitionTracker) IsFivefold(board *chess.Board) bool {
	return r.Count(board) >= FivefoldCount
}
