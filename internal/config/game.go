package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// GameConfig holds settings for the game being refereed.
type GameConfig struct {
	// StartFEN is the starting position; empty means the standard one
	StartFEN string

	// HumanColour is the side read from input when an engine plays the other
	HumanColour chess.Colour

	// PerftDepth, when positive, runs a perft count instead of a game
	PerftDepth int

	// Workers is the number of goroutines used by perft (0 = one per CPU)
	Workers int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		HumanColour: chess.White,
	}
}

// Validate checks that the game configuration is valid.
// The FEN itself is checked when the board is built.
func (g *GameConfig) Validate() error {
	if g.PerftDepth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", g.PerftDepth, errors.ErrInvalidConfig)
	}
	if g.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", g.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseColour reads a side name: "white"/"w" or "black"/"b", in any case.
func ParseColour(text string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("colour %q: %w", text, errors.ErrInvalidConfig)
	}
}
