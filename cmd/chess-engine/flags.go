// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Mode
	mode     = flag.String("mode", "analyse", "What to do: analyse, play, selfplay")
	startFEN = flag.String("fen", "", "Starting position for play and selfplay (default: standard start)")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	lineLength    = flag.Int("w", 80, "Maximum line length of move lists")
	noMoveNumbers = flag.Bool("nonumbers", false, "Don't output move numbers")
	showBoard     = flag.Bool("board", false, "Print the final board after a game")
	fenComments   = flag.Bool("fencomments", false, "Add FEN comment after each move")

	// Analysis options
	listMoves  = flag.Bool("moves", false, "List every legal move of each analysed position")
	onlyOver   = flag.Bool("over", false, "Only output checkmates and stalemates")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 64, "Work queue size for parallel analysis")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Bot options
	depth = flag.Int("depth", 1, "Search depth passed to the bot")
	seed  = flag.Int64("seed", 1, "Seed for the random bot")
	plies = flag.Int("plies", 200, "Maximum plies in a self-play game (0 = no limit)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Running commentary on the log")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Mode = m
	cfg.StartFEN = *startFEN

	applyOutputFlags(cfg)
	applyAnalysisFlags(cfg)
	applyDuplicateFlags(cfg)
	applyBotFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.KeepMoveNumbers = !*noMoveNumbers
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = *fenComments
}

// applyAnalysisFlags configures batch analysis.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.ListMoves = *listMoves
	cfg.Analysis.OnlyOver = *onlyOver
	cfg.Analysis.Workers = *workers
	cfg.Analysis.BufferSize = *bufferSize
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyBotFlags configures the move-search collaborator.
func applyBotFlags(cfg *config.Config) {
	cfg.Bot.Depth = *depth
	cfg.Bot.Seed = *seed
	cfg.Bot.Plies = *plies
}
