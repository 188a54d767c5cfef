// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
)

var (
	// Engine options
	enginePath = flag.String("engine", "", "UCI engine binary to play against")
	engineArgs = flag.String("engine-args", "", "Arguments passed to the engine (space separated)")
	moveTime   = flag.Duration("movetime", engine.DefaultMoveTime, "Engine thinking time per move")
	depth      = flag.Int("depth", 0, "Fixed engine search depth (0 = use -movetime)")

	// Game options
	colour   = flag.String("colour", "white", "Side played from standard input when an engine is used: white or black")
	startFEN = flag.String("fen", "", "Start position in FEN (default: initial position)")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth from the start position and exit")
	workers    = flag.Int("workers", 0, "Number of perft worker goroutines (0 = one per CPU core)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	statusOnly = flag.Bool("status", false, "Report the status of the start position and exit")
	noBoard    = flag.Bool("noboard", false, "Don't draw the board in text reports")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Trace the engine protocol")
	quiet   = flag.Bool("s", false, "Silent mode (no prompts or progress)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyEngineFlags(cfg)
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Trace
	}
	return nil
}

// applyEngineFlags configures the opponent engine.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.Path = *enginePath
	cfg.Engine.Args = strings.Fields(*engineArgs)
	cfg.Engine.MoveTime = *moveTime
	cfg.Engine.Depth = *depth
}

// applyGameFlags configures the start position, the human side and perft.
func applyGameFlags(cfg *config.Config) error {
	human, err := config.ParseColour(*colour)
	if err != nil {
		return err
	}
	cfg.Game.HumanColour = human
	cfg.Game.StartFEN = *startFEN
	cfg.Game.PerftDepth = *perftDepth
	cfg.Game.Workers = *workers
	return nil
}

// applyOutputFlags configures report output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.StatusOnly = *statusOnly
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.Filename = *outputFile
}
