package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/bot"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/session"
)

// Commands accepted in play input besides coordinate moves.
const (
	undoCommand = "undo"
	botCommand  = "bot"
)

// newGame starts a session from the configured position with the random
// bot as its searcher.
func newGame(cfg *config.Config) (*session.Session, error) {
	opts := []session.Option{
		session.WithSearcher(bot.NewRandom(cfg.Bot.Seed)),
		session.WithDepth(cfg.Bot.Depth),
	}
	if cfg.StartFEN == "" {
		return session.New(opts...), nil
	}
	return session.FromFEN(cfg.StartFEN, opts...)
}

// runPlay applies the moves in lines, which may hold several
// whitespace-separated moves each, and writes the resulting game.
func runPlay(ctx context.Context, cfg *config.Config, lines []string) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	n := 0
	for _, line := range lines {
		for _, token := range strings.Fields(line) {
			n++
			if err := playToken(ctx, g, token); err != nil {
				return fmt.Errorf("token %d %q: %w", n, token, err)
			}
			logf(cfg, 2, "%s -> %s\n", token, g.FEN())
		}
	}

	return writeGame(g, cfg, cfg.OutputFile)
}

// playToken applies a single input token to the game.
func playToken(ctx context.Context, g *session.Session, token string) error {
	switch strings.ToLower(token) {
	case undoCommand:
		return g.Undo()
	case botCommand:
		_, err := g.PlayBot(ctx)
		return err
	}

	s, err := bot.ParseSuggestion(token)
	if err != nil {
		return err
	}
	_, err = g.ApplySuggestion(s)
	return err
}

// writeGame writes a game in the configured format.
func writeGame(g *session.Session, cfg *config.Config, w io.Writer) error {
	if cfg.Output.JSONFormat {
		return output.OutputGameJSON(g, cfg, w)
	}
	return output.OutputGame(g, cfg, w)
}
