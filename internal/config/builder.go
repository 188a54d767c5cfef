package config

import (
	"io"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithEngine sets the engine binary and its arguments.
func (b *ConfigBuilder) WithEngine(path string, args ...string) *ConfigBuilder {
	b.cfg.Engine.Path = path
	b.cfg.Engine.Args = args
	return b
}

// WithMoveTime sets the engine's per-move search time.
func (b *ConfigBuilder) WithMoveTime(d time.Duration) *ConfigBuilder {
	b.cfg.Engine.MoveTime = d
	return b
}

// WithDepth sets a fixed engine search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Engine.Depth = depth
	return b
}

// WithHumanColour sets the side played from input.
func (b *ConfigBuilder) WithHumanColour(colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.HumanColour = colour
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithPerft requests a perft count to the given depth.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Game.PerftDepth = depth
	b.cfg.Game.Workers = workers
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithStatusOnly prints the position report instead of playing.
func (b *ConfigBuilder) WithStatusOnly(enabled bool) *ConfigBuilder {
	b.cfg.Output.StatusOnly = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
