// Package worker provides a worker pool for analysing positions in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// WorkItem represents a position to be analysed.
type WorkItem struct {
	FEN   string
	Index int // Original index for tracking
}

// ProcessResult represents the analysis of one position.
type ProcessResult struct {
	FEN        string
	Index      int
	Status     chess.GameStatus
	LegalMoves []chess.Move
	Draws      engine.DrawReport
	Duplicate  bool // Position was already seen in this batch
	Error      error
}

// ProcessFunc analyses one work item. It is called concurrently.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the given number of workers and buffer size.
// Values below 1 are raised to 1.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(max(bufferSize, 1)))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip any item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, analyses every FEN and returns the results in input
// order. If ctx is cancelled the pool is stopped and the results gathered
// so far are returned with ctx.Err().
func (p *Pool) Run(ctx context.Context, fens []string) ([]ProcessResult, error) {
	p.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer p.Close()
		for i, fen := range fens {
			select {
			case p.workChan <- WorkItem{FEN: fen, Index: i}:
			case <-gctx.Done():
				p.Stop()
				return gctx.Err()
			}
		}
		return nil
	})

	results := make([]ProcessResult, 0, len(fens))
	for r := range p.Results() {
		results = append(results, r)
		if ctx.Err() != nil {
			p.Stop()
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
