// Package errors provides sentinel errors and error types for the chess referee.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrInvalidSquare indicates square text outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrPromotionRequired indicates a pawn reaching the last rank without a valid promotion piece.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrGameOver indicates a move or action after the game has been decided.
	ErrGameOver = errors.New("game is over")

	// ErrNoDrawClaim indicates a draw claim when no draw rule applies.
	ErrNoDrawClaim = errors.New("no draw rule applies")

	// ErrEngineStart indicates the external engine process could not be launched.
	ErrEngineStart = errors.New("engine failed to start")

	// ErrEngineClosed indicates the engine pipe closed before a bestmove line.
	ErrEngineClosed = errors.New("engine closed connection")

	// ErrNoBestMove indicates the engine answered without a usable move.
	ErrNoBestMove = errors.New("engine returned no move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with game context: the ply, the move text and the
// position it was attempted in. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number of the attempted move (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position before the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	default:
		return "move error"
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a text parsing error with position context.
// It is used for FEN fields and engine protocol lines.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Which field or token failed (e.g. "side to move")
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.Input))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
