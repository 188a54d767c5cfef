// Package output renders game status and perft results as text or JSON.
package output

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// Report is a snapshot of a session for display.
type Report struct {
	FEN        string
	StartFEN   string
	ToMove     chess.Colour
	InCheck    bool
	Outcome    chess.Outcome
	DrawRule   game.DrawRule // why the game was drawn, if it was by rule
	Claimable  game.DrawRule // a draw the side to move may claim now
	LegalMoves []string
	History    []chess.MoveRecord
	Board      *chess.Board
}

// NewReport takes a snapshot of the session.
func NewReport(s *game.Session) *Report {
	r := &Report{
		FEN:      s.FEN(),
		StartFEN: s.StartFEN(),
		ToMove:   s.ToMove(),
		InCheck:  s.InCheck(),
		Outcome:  s.Outcome(),
		DrawRule: s.DrawRule(),
		History:  s.History(),
		Board:    s.Board(),
	}
	if rule, ok := s.ClaimableDraw(); ok {
		r.Claimable = rule
	}
	for _, m := range s.LegalMoves() {
		r.LegalMoves = append(r.LegalMoves, m.String())
	}
	return r
}

// PerftResult is the outcome of a perft divide run.
type PerftResult struct {
	FEN     string
	Depth   int
	Entries []engine.DivideEntry
	Total   uint64
}

// numberedMove is a history entry with its fullmove number.
type numberedMove struct {
	Number uint
	Record chess.MoveRecord
}

// numberMoves assigns fullmove numbers to the history, counting from the
// starting position's move number.
func numberMoves(startFEN string, history []chess.MoveRecord) []numberedMove {
	number := uint(1)
	if board, err := engine.NewBoardFromFEN(startFEN); err == nil {
		number = board.MoveNumber
	}

	moves := make([]numberedMove, len(history))
	for i, rec := range history {
		moves[i] = numberedMove{Number: number, Record: rec}
		if rec.Colour == chess.Black {
			number++
		}
	}
	return moves
}
