// Package game runs a single refereed game: it owns the board, applies
// moves from players or an engine, and decides when and how the game ends.
package game

import (
	"fmt"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/hashing"
)

// DrawRule names the rule behind a DrawByRule outcome or a claimable draw.
type DrawRule int

const (
	NoDrawRule DrawRule = iota
	FiftyMoves
	SeventyFiveMoves
	ThreefoldRepetition
	FivefoldRepetition
	InsufficientMaterial
)

// String returns a readable name for the rule.
func (r DrawRule) String() string {
	switch r {
	case FiftyMoves:
		return "fifty-move rule"
	case SeventyFiveMoves:
		return "seventy-five-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FivefoldRepetition:
		return "fivefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "none"
	}
}

// Session is one game in progress. It is not safe for concurrent use.
type Session struct {
	board    *chess.Board
	startFEN string
	reps     *hashing.RepetitionTracker

	outcome  chess.Outcome
	drawRule DrawRule

	// Side with a pending draw offer, if any
	offer    chess.Colour
	hasOffer bool
}

// NewSession starts a game from the standard initial position.
func NewSession() *Session {
	s, _ := NewSessionFromFEN(engine.InitialFEN)
	return s
}

// NewSessionFromFEN starts a game from the given position. A position that
// is already decided (mate, stalemate, dead draw) starts as a finished game.
func NewSessionFromFEN(fen string) (*Session, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	s := &Session{
		board:    board,
		startFEN: engine.BoardToFEN(board),
		reps:     hashing.NewRepetitionTracker(),
	}
	s.reps.Record(board)
	s.evaluate()
	return s, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// FEN returns the current position.
func (s *Session) FEN() string {
	return engine.BoardToFEN(s.board)
}

// StartFEN returns the position the game started from.
func (s *Session) StartFEN() string {
	return s.startFEN
}

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour {
	return s.board.ToMove
}

// History returns the moves played so far.
func (s *Session) History() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), s.board.History...)
}

// Legal reports whether the side to move may move from one square to another.
// It is false once the game is over.
func (s *Session) Legal(from, to chess.Square) bool {
	return !s.outcome.IsOver() && engine.IsLegalMove(s.board, from, to)
}

// LegalMoves lists the moves available to the side to move, with each
// promotion choice listed separately. It is empty once the game is over.
func (s *Session) LegalMoves() []chess.Move {
	if s.outcome.IsOver() {
		return nil
	}
	return engine.LegalMoves(s.board)
}

// CanPromote reports whether the move would promote a pawn, so the caller
// knows to ask for a piece.
func (s *Session) CanPromote(from, to chess.Square) bool {
	return engine.CanPromote(s.board, from, to)
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return engine.IsInCheck(s.board, s.board.ToMove)
}

// Outcome returns the result so far.
func (s *Session) Outcome() chess.Outcome {
	return s.outcome
}

// IsOver returns true once the game has been decided.
func (s *Session) IsOver() bool {
	return s.outcome.IsOver()
}

// DrawRule returns the rule that drew the game, or NoDrawRule.
func (s *Session) DrawRule() DrawRule {
	return s.drawRule
}

// RepetitionCount returns how often the current position has occurred.
func (s *Session) RepetitionCount() int {
	return s.reps.Count(s.board)
}

// Play applies a move for the side to move.
func (s *Session) Play(move chess.Move) error {
	if s.outcome.IsOver() {
		return s.gameOver(move)
	}
	mover := s.board.ToMove
	if err := engine.ApplyMove(s.board, move); err != nil {
		return err
	}

	// Moving instead of answering declines the opponent's offer.
	if s.hasOffer && s.offer != mover {
		s.hasOffer = false
	}

	s.reps.Record(s.board)
	s.evaluate()
	return nil
}

// PlayText parses long algebraic move text ("e2e4", "e7e8q") and plays it.
// A legal pawn move to the last rank without a piece letter is refused with
// the text to type instead, e.g. "promotion piece required (e7e8q)".
func (s *Session) PlayText(text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if move.Promotion == chess.NoPiece && s.Legal(move.From, move.To) && s.CanPromote(move.From, move.To) {
		return fmt.Errorf("%w (%sq)", errors.ErrPromotionRequired, move)
	}
	return s.Play(move)
}

// PlayEngine asks the searcher for a move in the current position and
// plays it. The searcher sees a copy of the board.
func (s *Session) PlayEngine(searcher engine.Searcher) (chess.Move, error) {
	if s.outcome.IsOver() {
		return chess.Move{}, s.gameOver(chess.Move{})
	}
	move, err := searcher.BestMove(s.board.Copy())
	if err != nil {
		return chess.Move{}, err
	}
	return move, s.playEngineMove(move)
}

// PlayAnalysed is PlayEngine for an engine that also reports its
// evaluation of the position it was asked about.
func (s *Session) PlayAnalysed(analyser engine.Analyser) (chess.Move, *engine.Evaluation, error) {
	if s.outcome.IsOver() {
		return chess.Move{}, nil, s.gameOver(chess.Move{})
	}
	eval, err := analyser.Search(s.board.Copy())
	if err != nil {
		return chess.Move{}, nil, err
	}
	move, err := engine.MoveFromEvaluation(eval)
	if err != nil {
		return chess.Move{}, eval, err
	}
	return move, eval, s.playEngineMove(move)
}

func (s *Session) playEngineMove(move chess.Move) error {
	if err := s.Play(move); err != nil {
		return errors.Wrap(err, "engine move")
	}
	return nil
}

// Resign ends the game as a win for the other side.
func (s *Session) Resign(colour chess.Colour) error {
	if s.outcome.IsOver() {
		return s.gameOver(chess.Move{})
	}
	s.finish(chess.Outcome{Kind: chess.Resignation, Winner: colour.Opposite()}, NoDrawRule)
	return nil
}

// OfferDraw records a draw offer from colour. It stands until the opponent
// accepts it with AgreeDraw or declines it by moving.
func (s *Session) OfferDraw(colour chess.Colour) error {
	if s.outcome.IsOver() {
		return s.gameOver(chess.Move{})
	}
	s.offer = colour
	s.hasOffer = true
	return nil
}

// DrawOffer returns the side with a pending draw offer.
func (s *Session) DrawOffer() (chess.Colour, bool) {
	return s.offer, s.hasOffer
}

// AgreeDraw accepts the opponent's pending offer on behalf of colour.
func (s *Session) AgreeDraw(colour chess.Colour) error {
	if s.outcome.IsOver() {
		return s.gameOver(chess.Move{})
	}
	if !s.hasOffer || s.offer == colour {
		return fmt.Errorf("%v has no draw offer to accept: %w", colour, errors.ErrNoDrawClaim)
	}
	s.finish(chess.Outcome{Kind: chess.AgreedDraw}, NoDrawRule)
	return nil
}

// ClaimableDraw returns the rule under which a draw may be claimed now.
func (s *Session) ClaimableDraw() (DrawRule, bool) {
	switch {
	case s.outcome.IsOver():
		return NoDrawRule, false
	case s.reps.IsThreefold(s.board):
		return ThreefoldRepetition, true
	case engine.AnalyzeDrawRules(s.board).FiftyMoveRule:
		return FiftyMoves, true
	}
	return NoDrawRule, false
}

// ClaimDraw ends the game as a draw if threefold repetition or the
// fifty-move rule applies, and returns ErrNoDrawClaim otherwise.
func (s *Session) ClaimDraw() error {
	if s.outcome.IsOver() {
		return s.gameOver(chess.Move{})
	}
	rule, ok := s.ClaimableDraw()
	if !ok {
		return fmt.Errorf("after %d plies: %w", len(s.board.History), errors.ErrNoDrawClaim)
	}
	s.finish(chess.Outcome{Kind: chess.DrawByRule}, rule)
	return nil
}

// evaluate decides whether the position just reached ends the game.
// Mate and stalemate come first: a mating move wins even if it is also
// the hundred-and-fiftieth quiet half-move.
func (s *Session) evaluate() {
	if outcome := engine.IsGameOver(s.board); outcome.IsOver() {
		s.finish(outcome, NoDrawRule)
		return
	}
	rules := engine.AnalyzeDrawRules(s.board)
	switch {
	case s.reps.IsFivefold(s.board):
		s.finish(chess.Outcome{Kind: chess.DrawByRule}, FivefoldRepetition)
	case rules.SeventyFiveMoveRule:
		s.finish(chess.Outcome{Kind: chess.DrawByRule}, SeventyFiveMoves)
	case rules.InsufficientMaterial:
		s.finish(chess.Outcome{Kind: chess.DrawByRule}, InsufficientMaterial)
	}
}

func (s *Session) finish(outcome chess.Outcome, rule DrawRule) {
	s.outcome = outcome
	s.drawRule = rule
	s.hasOffer = false
}

func (s *Session) gameOver(move chess.Move) error {
	err := &errors.MoveError{
		Err: errors.ErrGameOver,
		Ply: len(s.board.History) + 1,
		FEN: engine.BoardToFEN(s.board),
	}
	if move != (chess.Move{}) {
		err.MoveText = move.String()
	}
	return err
}
