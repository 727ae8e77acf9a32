// chess-engine analyses chess positions, replays coordinate moves and
// plays self-play games against a random bot.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, flag.Args())
	stop()

	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the configured mode.
func run(ctx context.Context, cfg *config.Config, args []string) error {
	switch cfg.Mode {
	case config.Play:
		lines, err := readInputs(args, cfg)
		if err != nil {
			return err
		}
		return runPlay(ctx, cfg, lines)

	case config.SelfPlay:
		return runSelfPlay(ctx, cfg)

	default:
		fens, err := readInputs(args, cfg)
		if err != nil {
			return err
		}
		stats, err := runAnalyse(ctx, cfg, fens)
		if cfg.Verbosity > 0 {
			reportStatistics(cfg.LogFile, stats)
		}
		return err
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// readInputs collects the input lines of every named file, or of stdin
// when no file is given. A file that cannot be opened is reported and
// skipped.
func readInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) == 0 {
		return readLines(os.Stdin)
	}

	var all []string
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}
		lines, err := readLines(file)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return all, fmt.Errorf("reading %s: %w", filename, err)
		}
		logf(cfg, 2, "Read %d line(s) from %s\n", len(lines), filename)
		all = append(all, lines...)
	}
	return all, nil
}

// readLines returns the non-blank lines of r. Lines starting with '#' are
// comments.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// logf writes to the log when the verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A chess rules engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  analyse   Classify each FEN read from the input (default)\n")
	fmt.Fprintf(os.Stderr, "  play      Apply coordinate moves (e2e4, e7e8q) read from the input;\n")
	fmt.Fprintf(os.Stderr, "            'undo' takes back a move, 'bot' lets the bot move\n")
	fmt.Fprintf(os.Stderr, "  selfplay  Let the random bot play both sides\n")
}
