package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// EngineConfig describes the external UCI engine, if any.
type EngineConfig struct {
	// Path to the engine binary; empty means no engine
	Path string
	Args []string

	// MoveTime is the per-move search time; Depth, when positive, replaces it
	MoveTime time.Duration
	Depth    int
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		MoveTime: engine.DefaultMoveTime,
	}
}

// Enabled returns true if an engine binary is configured.
func (e *EngineConfig) Enabled() bool {
	return e.Path != ""
}

// Validate checks that the engine configuration is usable.
func (e *EngineConfig) Validate() error {
	if e.MoveTime <= 0 {
		return fmt.Errorf("move time %v must be positive: %w", e.MoveTime, errors.ErrInvalidConfig)
	}
	if e.Depth < 0 {
		return fmt.Errorf("search depth %d is negative: %w", e.Depth, errors.ErrInvalidConfig)
	}
	if len(e.Args) > 0 && e.Path == "" {
		return fmt.Errorf("engine arguments given without an engine: %w", errors.ErrInvalidConfig)
	}
	return nil
}
