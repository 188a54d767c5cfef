package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// DefaultLineLength is where move lists wrap.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprint(o.w, "\n"+o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// DrawBoard prints the board from White's side, rank 8 first.
// Empty squares are shown as dots.
func DrawBoard(w io.Writer, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			c := byte('.')
			if !piece.IsEmpty() {
				c = piece.Letter()
			}
			if file > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%c", c)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// FormatMoves renders the history with move numbers: "1. e2e4 e7e5 2. g1f3".
// A history starting with Black's move opens with "N...". The caller has
// already written a label as wide as indent on the first line.
func FormatMoves(w io.Writer, startFEN string, history []chess.MoveRecord, indent string) {
	ow := NewOutputWriter(w, DefaultLineLength, indent)
	ow.lineLength = len(indent)
	for i, nm := range numberMoves(startFEN, history) {
		switch {
		case nm.Record.Colour == chess.White:
			ow.Write(strconv.FormatUint(uint64(nm.Number), 10) + ".")
		case i == 0:
			ow.Write(strconv.FormatUint(uint64(nm.Number), 10) + "...")
		}
		ow.Write(nm.Record.Move().String())
	}
}

// statusLine describes the outcome in one line.
func statusLine(r *Report) string {
	switch {
	case r.Outcome.Kind == chess.DrawByRule:
		return "Draw by " + r.DrawRule.String()
	case r.Outcome.IsOver():
		return r.Outcome.String()
	case r.InCheck:
		return r.ToMove.String() + " to move, in check"
	default:
		return r.ToMove.String() + " to move"
	}
}

// WriteReportText prints a human readable status report.
func WriteReportText(w io.Writer, r *Report, showBoard bool) {
	if showBoard && r.Board != nil {
		DrawBoard(w, r.Board)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "FEN:    %s\n", r.FEN)
	fmt.Fprintf(w, "Status: %s\n", statusLine(r))
	fmt.Fprintf(w, "Result: %s\n", r.Outcome.Result())
	if r.Claimable != game.NoDrawRule {
		fmt.Fprintf(w, "Claim:  draw by %s available\n", r.Claimable)
	}
	if len(r.History) > 0 {
		fmt.Fprint(w, "Moves:  ")
		FormatMoves(w, r.StartFEN, r.History, "        ")
		fmt.Fprintln(w)
	}
	if len(r.LegalMoves) > 0 {
		prefix := fmt.Sprintf("Legal:  (%d) ", len(r.LegalMoves))
		fmt.Fprint(w, prefix)
		ow := NewOutputWriter(w, DefaultLineLength, "        ")
		ow.lineLength = len(prefix)
		for _, m := range r.LegalMoves {
			ow.Write(m)
		}
		fmt.Fprintln(w)
	}
}

// WritePerftText prints one "move: nodes" line per root move and the total.
func WritePerftText(w io.Writer, p *PerftResult) {
	for _, e := range p.Entries {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(w, "\nDepth %d nodes searched: %d\n", p.Depth, p.Total)
}
