package engine

import (
	"sort"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is not modified.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perft(board.Copy(), depth)
}

// perft walks the tree on a board it owns, rewinding after each move.
func perft(board *chess.Board, depth int) uint64 {
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		state := board.SaveState()
		commitMove(board, move)
		nodes += perft(board, depth-1)
		board.RestoreState(state)
	}
	return nodes
}

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide counts leaf nodes per root move, spreading the root moves over
// a pool of workers (one per CPU when workers < 1). Each worker searches its own copy of the board.
// Entries are sorted by move text; the total is also returned.
func PerftDivide(board *chess.Board, depth, workers int) ([]DivideEntry, uint64) {
	if depth <= 0 {
		return nil, 1
	}

	moves := LegalMoves(board)
	pool := worker.New(countSubtree,
		worker.WithWorkers(workers),
		worker.WithBacklog(len(moves)+1),
	)
	pool.Start()

	for i, move := range moves {
		pool.Submit(worker.Job{
			Board: board.Copy(),
			Move:  move,
			Depth: depth - 1,
			Index: i,
		})
	}
	go pool.Close()

	entries := make([]DivideEntry, 0, len(moves))
	var total uint64
	for result := range pool.Results() {
		entries = append(entries, DivideEntry{Move: result.Move, Nodes: result.Nodes})
		total += result.Nodes
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, total
}

// countSubtree plays the job's move on its private board and counts below it.
func countSubtree(job worker.Job) worker.Count {
	commitMove(job.Board, job.Move)
	nodes := uint64(1)
	if job.Depth > 0 {
		nodes = perft(job.Board, job.Depth)
	}
	return worker.Count{Move: job.Move, Index: job.Index, Nodes: nodes}
}
