package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
	"github.com/lgbarn/chess-referee-go/internal/output"
)

// referee feeds moves and commands to a session and reports the result.
type referee struct {
	session *game.Session
	cfg     *config.Config
	writer  output.ReportWriter

	// Plays the side that is not cfg.Game.HumanColour; nil when stdin
	// plays both sides.
	engine engine.Searcher
}

func newReferee(session *game.Session, cfg *config.Config, writer output.ReportWriter, searcher engine.Searcher) *referee {
	return &referee{
		session: session,
		cfg:     cfg,
		writer:  writer,
		engine:  searcher,
	}
}

// run plays until the game ends, the input runs out or "quit" is read.
// Bad input is logged and play continues; engine failures end the run.
func (r *referee) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	if err := r.report(); err != nil {
		return err
	}
	for !r.session.IsOver() {
		if r.engineToMove() {
			if err := r.engineMove(); err != nil {
				return err
			}
			if err := r.report(); err != nil {
				return err
			}
			continue
		}

		r.cfg.Logf(config.Normal, "%v to move: ", r.session.ToMove())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := r.command(line)
		if err != nil {
			r.cfg.Logf(config.Normal, "%v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}

	r.cfg.Logf(config.Normal, "Game over: %v %s\n", r.session.Outcome(), r.session.Outcome().Result())
	return nil
}

func (r *referee) engineToMove() bool {
	return r.engine != nil && r.session.ToMove() != r.cfg.Game.HumanColour
}

// engineMove plays the engine's reply, with its evaluation when the engine
// reports one.
func (r *referee) engineMove() error {
	analyser, ok := r.engine.(engine.Analyser)
	if !ok {
		move, err := r.session.PlayEngine(r.engine)
		if err != nil {
			return err
		}
		r.cfg.Logf(config.Normal, "Engine plays %s\n", move)
		return nil
	}

	move, eval, err := r.session.PlayAnalysed(analyser)
	if err != nil {
		return err
	}
	r.cfg.Logf(config.Normal, "Engine plays %s (%s, depth %d)\n", move, engine.FormatEvaluation(eval), eval.Depth)
	return nil
}

// command handles one line of input. It reports true when play should stop.
func (r *referee) command(line string) (bool, error) {
	side := r.session.ToMove()

	switch strings.ToLower(line) {
	case "quit", "exit":
		return true, nil
	case "status", "moves":
		return false, r.report()
	case "resign":
		if err := r.session.Resign(side); err != nil {
			return false, err
		}
	case "draw":
		if err := r.session.OfferDraw(side); err != nil {
			return false, err
		}
		r.cfg.Logf(config.Normal, "%v offers a draw\n", side)
		return false, nil
	case "accept":
		if err := r.session.AgreeDraw(side); err != nil {
			return false, err
		}
	case "claim":
		if err := r.session.ClaimDraw(); err != nil {
			return false, err
		}
	default:
		if err := r.session.PlayText(line); err != nil {
			return false, err
		}
		r.announceOffer(side)
	}
	return false, r.report()
}

// announceOffer tells the side now to move about a draw offer standing
// against it.
func (r *referee) announceOffer(mover chess.Colour) {
	if offerer, ok := r.session.DrawOffer(); ok && offerer == mover {
		r.cfg.Logf(config.Normal, "%v may accept the draw offer\n", mover.Opposite())
	}
}

func (r *referee) report() error {
	if err := r.writer.WriteReport(output.NewReport(r.session)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
