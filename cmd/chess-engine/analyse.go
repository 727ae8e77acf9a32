package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// analysisStats summarises a batch run.
type analysisStats struct {
	total      int
	output     int
	duplicates int
	errors     int
}

// runAnalyse classifies every FEN on the worker pool and writes the
// results in input order.
func runAnalyse(ctx context.Context, cfg *config.Config, fens []string) (analysisStats, error) {
	var stats analysisStats

	var detector *hashing.ThreadSafeDetector
	if cfg.Duplicate.Suppress {
		detector = hashing.NewThreadSafeDetector(cfg.Duplicate.MaxCapacity)
	}

	numWorkers := cfg.Analysis.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	pool := worker.NewPoolWithOptions(worker.Analyse(detector),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(cfg.Analysis.BufferSize))

	logf(cfg, 2, "Analysing %d position(s) with %d worker(s)\n", len(fens), numWorkers)
	results, runErr := pool.Run(ctx, fens)

	w := output.NewResultWriter(cfg.OutputFile, cfg)
	for _, r := range results {
		stats.total++
		switch {
		case r.Error != nil:
			stats.errors++
			logf(cfg, 1, "Position %d: %v\n", r.Index+1, r.Error)
		case r.Duplicate:
			stats.duplicates++
			continue
		}
		if cfg.Analysis.OnlyOver && (r.Error != nil || !r.Status.IsOver()) {
			continue
		}
		if err := w.WriteResult(r); err != nil {
			return stats, err
		}
		stats.output++
	}
	if err := w.Close(); err != nil {
		return stats, err
	}

	if detector != nil && detector.IsFull() {
		logf(cfg, 1, "Duplicate table full after %d position(s)\n", detector.UniqueCount())
	}
	return stats, runErr
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats analysisStats) {
	fmt.Fprintf(w, "%d position(s) output, %d duplicate(s), %d error(s) out of %d.\n",
		stats.output, stats.duplicates, stats.errors, stats.total)
}
