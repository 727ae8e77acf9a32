// Package config provides the configuration for chess-engine.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Mode selects what the program does.
type Mode int

const (
	Analyse  Mode = iota // Classify FEN positions read from input
	Play                 // Apply coordinate moves read from input
	SelfPlay             // Let the bot play against itself
)

var modeNames = map[string]Mode{
	"analyse":  Analyse,
	"analyze":  Analyse,
	"play":     Play,
	"selfplay": SelfPlay,
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(name)]; ok {
		return m, nil
	}
	return Analyse, fmt.Errorf("unknown mode %q: %w", name, errors.ErrInvalidConfig)
}

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Play:
		return "play"
	case SelfPlay:
		return "selfplay"
	default:
		return "analyse"
	}
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// StartFEN is the position play and selfplay start from.
	// Empty means the standard starting position.
	StartFEN string

	Analysis  *AnalysisConfig
	Duplicate *DuplicateConfig
	Bot       *BotConfig
	Output    *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       Analyse,
		Verbosity:  1,
		Analysis:   NewAnalysisConfig(),
		Duplicate:  NewDuplicateConfig(),
		Bot:        NewBotConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the settings are usable together.
func (c *Config) Validate() error {
	switch {
	case c.Analysis.Workers < 0:
		return fmt.Errorf("workers %d: %w", c.Analysis.Workers, errors.ErrInvalidConfig)
	case c.Analysis.BufferSize < 1:
		return fmt.Errorf("buffer size %d: %w", c.Analysis.BufferSize, errors.ErrInvalidConfig)
	case c.Duplicate.MaxCapacity < 0:
		return fmt.Errorf("duplicate capacity %d: %w", c.Duplicate.MaxCapacity, errors.ErrInvalidConfig)
	case c.Bot.Depth < 1:
		return fmt.Errorf("depth %d: %w", c.Bot.Depth, errors.ErrInvalidConfig)
	case c.Bot.Plies < 0:
		return fmt.Errorf("plies %d: %w", c.Bot.Plies, errors.ErrInvalidConfig)
	case c.OutputFile == nil || c.LogFile == nil:
		return fmt.Errorf("missing output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}
