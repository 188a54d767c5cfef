package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// DefaultMoveTime is the search time requested from the engine when no
// depth or move time is configured.
const DefaultMoveTime = time.Second

// Searcher picks a move for the side to move. The call blocks until a move
// is available.
type Searcher interface {
	BestMove(board *chess.Board) (chess.Move, error)
}

// Analyser is a Searcher that also reports its evaluation.
type Analyser interface {
	Searcher
	Search(board *chess.Board) (*Evaluation, error)
}

// Evaluation holds what the engine reported during one search.
type Evaluation struct {
	Score    int    // Centipawns from the side to move's point of view
	IsMate   bool   // True if Score is replaced by a mate distance
	MateIn   int    // Moves to mate; negative when being mated
	Depth    int    // Last reported search depth
	BestMove string // The bestmove token, in long algebraic notation
}

// UCIEngine talks to an external engine over the UCI line protocol.
// It is not safe for concurrent use.
type UCIEngine struct {
	cmd     *exec.Cmd
	w       io.Writer
	closer  io.Closer
	scanner *bufio.Scanner

	moveTime time.Duration
	depth    int
	logger   io.Writer
}

// UCIOption configures a UCIEngine.
type UCIOption func(*UCIEngine)

// WithMoveTime sets the time the engine may think per move.
func WithMoveTime(d time.Duration) UCIOption {
	return func(e *UCIEngine) {
		if d > 0 {
			e.moveTime = d
		}
	}
}

// WithDepth makes the engine search to a fixed depth instead of a fixed time.
func WithDepth(depth int) UCIOption {
	return func(e *UCIEngine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithLogger echoes every protocol line to w: ">> " for commands sent and
// "<< " for lines received.
func WithLogger(w io.Writer) UCIOption {
	return func(e *UCIEngine) {
		e.logger = w
	}
}

// StartUCIEngine launches the engine binary and connects to its standard
// input and output.
func StartUCIEngine(path string, args []string, opts ...UCIOption) (*UCIEngine, error) {
	cmd := exec.Command(path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, errors.ErrEngineStart, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, errors.ErrEngineStart, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, errors.ErrEngineStart, err)
	}

	e := NewUCIEngine(stdout, stdin, opts...)
	e.cmd = cmd
	return e, nil
}

// NewUCIEngine speaks UCI over an existing pair of streams: r carries the
// engine's output and w its input. If w is an io.Closer it is closed by Close.
func NewUCIEngine(r io.Reader, w io.Writer, opts ...UCIOption) *UCIEngine {
	e := &UCIEngine{
		w:        w,
		scanner:  bufio.NewScanner(r),
		moveTime: DefaultMoveTime,
	}
	if c, ok := w.(io.Closer); ok {
		e.closer = c
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search sends the position and blocks until the engine answers with a
// bestmove line. Info lines seen along the way update the evaluation.
func (e *UCIEngine) Search(board *chess.Board) (*Evaluation, error) {
	for _, cmd := range []string{
		"isready",
		"position fen " + BoardToFEN(board),
		e.goCommand(),
	} {
		if err := e.send(cmd); err != nil {
			return nil, err
		}
	}

	eval := &Evaluation{}
	for e.scanner.Scan() {
		line := strings.TrimSpace(e.scanner.Text())
		e.trace("<< ", line)

		switch {
		case strings.HasPrefix(line, "info"):
			e.parseInfo(line, eval)
		case strings.HasPrefix(line, "bestmove"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return eval, fmt.Errorf("%q: %w", line, errors.ErrNoBestMove)
			}
			eval.BestMove = fields[1]
			return eval, nil
		}
	}

	if err := e.scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrEngineClosed, err)
	}
	return nil, errors.ErrEngineClosed
}

// BestMove asks the engine for a move in the given position.
func (e *UCIEngine) BestMove(board *chess.Board) (chess.Move, error) {
	eval, err := e.Search(board)
	if err != nil {
		return chess.Move{}, err
	}
	return MoveFromEvaluation(eval)
}

// MoveFromEvaluation parses the bestmove token of a finished search.
func MoveFromEvaluation(eval *Evaluation) (chess.Move, error) {
	if eval.BestMove == "" || eval.BestMove == "(none)" || eval.BestMove == "0000" {
		return chess.Move{}, errors.ErrNoBestMove
	}
	move, err := chess.ParseMove(eval.BestMove)
	if err != nil {
		return chess.Move{}, errors.Wrap(err, "engine reply")
	}
	return move, nil
}

// Close asks the engine to quit and releases its streams.
// For a launched process it also waits for the process to exit.
func (e *UCIEngine) Close() error {
	sendErr := e.send("quit")
	var closeErr error
	if e.closer != nil {
		closeErr = e.closer.Close()
	}
	if e.cmd != nil {
		return e.cmd.Wait()
	}
	if sendErr != nil {
		return sendErr
	}
	return closeErr
}

func (e *UCIEngine) goCommand() string {
	if e.depth > 0 {
		return "go depth " + strconv.Itoa(e.depth)
	}
	return "go movetime " + strconv.FormatInt(e.moveTime.Milliseconds(), 10)
}

func (e *UCIEngine) send(cmd string) error {
	e.trace(">> ", cmd)
	if _, err := io.WriteString(e.w, cmd+"\n"); err != nil {
		return fmt.Errorf("sending %q: %w: %v", cmd, errors.ErrEngineClosed, err)
	}
	return nil
}

func (e *UCIEngine) trace(prefix, line string) {
	if e.logger != nil {
		fmt.Fprintf(e.logger, "%s%s\n", prefix, line)
	}
}

// parseInfo extracts depth and score from an info line into eval.
// Fields that are absent or malformed leave eval unchanged.
func (e *UCIEngine) parseInfo(line string, eval *Evaluation) {
	fields := strings.Fields(line)
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					eval.Depth = n
				}
				i++
			}
		case "score":
			if i+2 < len(fields) {
				n, err := strconv.Atoi(fields[i+2])
				if err == nil {
					switch fields[i+1] {
					case "cp":
						eval.Score = n
						eval.IsMate = false
					case "mate":
						eval.MateIn = n
						eval.IsMate = true
					}
				}
				i += 2
			}
		}
	}
}

// FormatEvaluation renders an evaluation as pawns ("+1.23") or a mate
// distance ("+M3", "-M5").
func FormatEvaluation(eval *Evaluation) string {
	if eval.IsMate {
		if eval.MateIn < 0 {
			return fmt.Sprintf("-M%d", -eval.MateIn)
		}
		return fmt.Sprintf("+M%d", eval.MateIn)
	}

	signChar := '+'
	if eval.Score < 0 {
		signChar = '-'
	}
	cp := abs(eval.Score)
	return fmt.Sprintf("%c%d.%02d", signChar, cp/100, cp%100)
}
