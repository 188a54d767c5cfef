package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/testutil"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertEqual(t, cfg.Engine.MoveTime, engine.DefaultMoveTime)
	testutil.AssertEqual(t, cfg.Engine.Depth, 0)
	testutil.AssertFalse(t, cfg.Engine.Enabled(), "no engine by default")
	testutil.AssertEqual(t, cfg.Game.HumanColour, chess.White)
	testutil.AssertEqual(t, cfg.Game.StartFEN, "")
	testutil.AssertEqual(t, cfg.Game.PerftDepth, 0)
	testutil.AssertFalse(t, cfg.Output.JSONFormat, "JSONFormat")
	testutil.AssertFalse(t, cfg.Output.StatusOnly, "StatusOnly")
	testutil.AssertTrue(t, cfg.Output.ShowBoard, "ShowBoard")
	testutil.AssertEqual(t, cfg.Verbosity, Normal)
	testutil.AssertNotNil(t, cfg.OutputFile)
	testutil.AssertNotNil(t, cfg.LogFile)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"engine with args", func(c *Config) {
			c.Engine.Path = "stockfish"
			c.Engine.Args = []string{"--threads", "2"}
		}, false},
		{"fixed depth", func(c *Config) { c.Engine.Depth = 12 }, false},
		{"zero move time", func(c *Config) { c.Engine.MoveTime = 0 }, true},
		{"negative move time", func(c *Config) { c.Engine.MoveTime = -time.Second }, true},
		{"negative depth", func(c *Config) { c.Engine.Depth = -1 }, true},
		{"args without engine", func(c *Config) { c.Engine.Args = []string{"-x"} }, true},
		{"perft", func(c *Config) { c.Game.PerftDepth = 4; c.Game.Workers = 8 }, false},
		{"negative perft depth", func(c *Config) { c.Game.PerftDepth = -2 }, true},
		{"negative workers", func(c *Config) { c.Game.Workers = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		text    string
		want    chess.Colour
		wantErr bool
	}{
		{"white", chess.White, false},
		{"White", chess.White, false},
		{"w", chess.White, false},
		{"black", chess.Black, false},
		{" B ", chess.Black, false},
		{"red", chess.White, true},
		{"", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseColour(tt.text)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		verbosity int
		level     int
		want      string
	}{
		{Quiet, Normal, ""},
		{Normal, Normal, "move 3\n"},
		{Normal, Trace, ""},
		{Trace, Trace, "move 3\n"},
	}

	for _, tt := range tests {
		var log bytes.Buffer
		cfg := NewConfigBuilder().WithLogFile(&log).WithVerbosity(tt.verbosity).Build()
		cfg.Logf(tt.level, "move %d\n", 3)
		testutil.AssertEqual(t, log.String(), tt.want, "verbosity %d level %d", tt.verbosity, tt.level)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithEngine("/usr/bin/stockfish", "--uci").
		WithMoveTime(250 * time.Millisecond).
		WithDepth(10).
		WithHumanColour(chess.Black).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithPerft(3, 2).
		WithJSONOutput(true).
		WithStatusOnly(true).
		WithOutput(&out).
		Build()

	testutil.AssertEqual(t, cfg.Engine.Path, "/usr/bin/stockfish")
	testutil.AssertEqual(t, cfg.Engine.Args, []string{"--uci"})
	testutil.AssertTrue(t, cfg.Engine.Enabled(), "Enabled")
	testutil.AssertEqual(t, cfg.Engine.MoveTime, 250*time.Millisecond)
	testutil.AssertEqual(t, cfg.Engine.Depth, 10)
	testutil.AssertEqual(t, cfg.Game.HumanColour, chess.Black)
	testutil.AssertEqual(t, cfg.Game.StartFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.Game.PerftDepth, 3)
	testutil.AssertEqual(t, cfg.Game.Workers, 2)
	testutil.AssertTrue(t, cfg.Output.JSONFormat, "JSONFormat")
	testutil.AssertTrue(t, cfg.Output.StatusOnly, "StatusOnly")
	if cfg.OutputFile != &out {
		t.Error("WithOutput did not set OutputFile")
	}
	testutil.AssertNoError(t, cfg.Validate())
}
