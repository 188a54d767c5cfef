// Package worker spreads perft subtrees over a fixed set of goroutines.
package worker

import (
	"runtime"
	"sync"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// Job is one subtree to count: Move played from Board, then Depth more plies.
// Board belongs to the job; the count function may mutate it freely.
type Job struct {
	Board *chess.Board
	Move  chess.Move
	Depth int
	Index int // position of Move in the caller's move list
}

// Count is the leaf count below a job's move.
type Count struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// CountFunc does the work for one job.
type CountFunc func(job Job) Count

// Pool runs jobs on a fixed number of goroutines. Counts arrive in
// completion order, not submission order.
type Pool struct {
	size    int
	backlog int
	jobs    chan Job
	counts  chan Count
	count   CountFunc
	wg      sync.WaitGroup
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below one keep the
// default of one per CPU.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.size = n
		}
	}
}

// WithBacklog sets how many jobs and counts may be queued before Submit
// blocks.
func WithBacklog(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.backlog = n
		}
	}
}

// New creates a pool that runs count for every submitted job.
func New(count CountFunc, opts ...Option) *Pool {
	p := &Pool{
		size:    runtime.NumCPU(),
		backlog: 64,
		count:   count,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.backlog)
	p.counts = make(chan Count, p.backlog)
	return p
}

// Start launches the goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.counts <- p.count(job)
	}
}

// Submit queues a job. It blocks while the backlog is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the running ones and then closes
// the Results channel. Callers that submit more jobs than the backlog holds
// must drain Results concurrently.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.counts)
}

// Results delivers one Count per submitted job.
func (p *Pool) Results() <-chan Count {
	return p.counts
}
