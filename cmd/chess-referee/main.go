// chess-referee plays a game of chess between stdin and, optionally, a UCI
// engine, enforcing the rules and reporting how the game ends.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
	"github.com/lgbarn/chess-referee-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-referee version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fatalf("Error in options: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error in options: %v\n", err)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	session, err := newSession(cfg)
	if err != nil {
		fatalf("Error in start position: %v\n", err)
	}
	writer := output.NewWriter(cfg)

	switch {
	case cfg.Game.PerftDepth > 0:
		err = runPerft(session, cfg, writer)
	case cfg.Output.StatusOnly:
		err = writer.WriteReport(output.NewReport(session))
	default:
		err = runGame(session, cfg, writer)
	}
	if err != nil {
		fatalf("Error: %v\n", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fatalf("Error creating log file %s: %v\n", *logFile, err)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.Output.Filename == "" {
		return
	}
	file, err := os.Create(cfg.Output.Filename)
	if err != nil {
		fatalf("Error creating output file %s: %v\n", cfg.Output.Filename, err)
	}
	cfg.SetOutput(file)
}

// newSession starts the game at the configured position.
func newSession(cfg *config.Config) (*game.Session, error) {
	if cfg.Game.StartFEN == "" {
		return game.NewSession(), nil
	}
	return game.NewSessionFromFEN(cfg.Game.StartFEN)
}

// runPerft splits the perft count of the start position by root move.
func runPerft(session *game.Session, cfg *config.Config, writer output.ReportWriter) error {
	cfg.Logf(config.Normal, "Perft to depth %d\n", cfg.Game.PerftDepth)
	entries, total := engine.PerftDivide(session.Board(), cfg.Game.PerftDepth, cfg.Game.Workers)
	return writer.WritePerft(&output.PerftResult{
		FEN:     session.FEN(),
		Depth:   cfg.Game.PerftDepth,
		Entries: entries,
		Total:   total,
	})
}

// runGame plays moves from stdin, against the engine if one is configured.
func runGame(session *game.Session, cfg *config.Config, writer output.ReportWriter) error {
	var searcher engine.Searcher
	if cfg.Engine.Enabled() {
		uci, err := startEngine(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := uci.Close(); err != nil {
				cfg.Logf(config.Normal, "Engine exit: %v\n", err)
			}
		}()
		searcher = uci
	}

	ref := newReferee(session, cfg, writer, searcher)
	return ref.run(os.Stdin)
}

// startEngine launches the configured UCI engine.
func startEngine(cfg *config.Config) (*engine.UCIEngine, error) {
	opts := []engine.UCIOption{engine.WithMoveTime(cfg.Engine.MoveTime)}
	if cfg.Engine.Depth > 0 {
		opts = append(opts, engine.WithDepth(cfg.Engine.Depth))
	}
	if cfg.Verbosity >= config.Trace {
		opts = append(opts, engine.WithLogger(cfg.LogFile))
	}

	cfg.Logf(config.Normal, "Starting engine %s\n", cfg.Engine.Path)
	return engine.StartUCIEngine(cfg.Engine.Path, cfg.Engine.Args, opts...)
}

func usage() {
	out := os.Stderr
	fmt.Fprintf(out, "Usage: chess-referee [options]\n\n")
	fmt.Fprintf(out, "Referees a chess game. Moves are read from standard input in long\n")
	fmt.Fprintf(out, "algebraic notation (e2e4, e7e8q).\n\n")
	fmt.Fprintf(out, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(out, "\nCommands during play:\n")
	fmt.Fprintf(out, "  resign   Resign for the side to move\n")
	fmt.Fprintf(out, "  draw     Offer a draw\n")
	fmt.Fprintf(out, "  accept   Accept the opponent's draw offer\n")
	fmt.Fprintf(out, "  claim    Claim a draw by threefold repetition or the fifty-move rule\n")
	fmt.Fprintf(out, "  status   Print the current position and legal moves\n")
	fmt.Fprintf(out, "  quit     Stop without a result\n")
}
