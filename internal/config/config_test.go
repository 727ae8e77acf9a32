package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// TestConfig_Defaults verifies the sub-configs have sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Mode != Analyse {
		t.Errorf("Mode = %v, want %v", cfg.Mode, Analyse)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Analysis.Workers != 0 || cfg.Analysis.BufferSize != 64 {
		t.Errorf("Analysis = %+v, want 0 workers and buffer 64", *cfg.Analysis)
	}
	if cfg.Duplicate.Suppress || cfg.Duplicate.MaxCapacity != 0 {
		t.Errorf("Duplicate = %+v, want suppression off and unlimited", *cfg.Duplicate)
	}
	if cfg.Bot.Depth != 1 || cfg.Bot.Plies != 200 {
		t.Errorf("Bot = %+v, want depth 1 and 200 plies", *cfg.Bot)
	}
	if cfg.Output.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config Validate() = %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    Mode
		wantErr bool
	}{
		{"analyse", Analyse, false},
		{"analyze", Analyse, false},
		{"PLAY", Play, false},
		{"selfplay", SelfPlay, false},
		{"train", Analyse, true},
		{"", Analyse, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("ParseMode(%q) error = %v, want ErrInvalidConfig", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	for _, m := range []Mode{Analyse, Play, SelfPlay} {
		if got, err := ParseMode(m.String()); err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative workers", func(c *Config) { c.Analysis.Workers = -1 }},
		{"zero buffer", func(c *Config) { c.Analysis.BufferSize = 0 }},
		{"negative capacity", func(c *Config) { c.Duplicate.MaxCapacity = -3 }},
		{"zero depth", func(c *Config) { c.Bot.Depth = 0 }},
		{"negative plies", func(c *Config) { c.Bot.Plies = -1 }},
		{"no output", func(c *Config) { c.OutputFile = nil }},
		{"no log", func(c *Config) { c.LogFile = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg, err := NewConfigBuilder().
		WithMode(SelfPlay).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithWorkers(4).
		WithBufferSize(8).
		WithListMoves(true).
		WithDuplicateSuppression(true, 1000).
		WithDepth(3).
		WithSeed(42).
		WithPlies(60).
		WithJSONOutput(true).
		WithMaxLineLength(120).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(2).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.Mode != SelfPlay {
		t.Errorf("Mode = %v, want selfplay", cfg.Mode)
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN not set")
	}
	if cfg.Analysis.Workers != 4 || cfg.Analysis.BufferSize != 8 || !cfg.Analysis.ListMoves {
		t.Errorf("Analysis = %+v", *cfg.Analysis)
	}
	if !cfg.Duplicate.Suppress || cfg.Duplicate.MaxCapacity != 1000 {
		t.Errorf("Duplicate = %+v", *cfg.Duplicate)
	}
	if cfg.Bot.Depth != 3 || cfg.Bot.Seed != 42 || cfg.Bot.Plies != 60 {
		t.Errorf("Bot = %+v", *cfg.Bot)
	}
	if !cfg.Output.JSONFormat || cfg.Output.MaxLineLength != 120 {
		t.Errorf("Output = %+v", *cfg.Output)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("output streams not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}

func TestConfigBuilder_Invalid(t *testing.T) {
	cfg, err := NewConfigBuilder().WithDepth(0).Build()
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want ErrInvalidConfig", err)
	}
	if cfg != nil {
		t.Error("Build() returned a config alongside an error")
	}
}
