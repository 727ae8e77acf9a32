package main

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// runSelfPlay lets the bot play both sides until the game is over, a draw
// is automatic or the ply limit is reached, then writes the game.
func runSelfPlay(ctx context.Context, cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	for ply := 0; cfg.Bot.Plies == 0 || ply < cfg.Bot.Plies; ply++ {
		s, err := g.PlayBot(ctx)
		if errors.Is(err, errors.ErrGameOver) {
			break
		}
		if err != nil {
			return err
		}
		logf(cfg, 2, "%d: %s\n", g.History().Plies(), s)

		if draws := g.Draws(); draws.Automatic() {
			logf(cfg, 1, "Game drawn after %d plies\n", g.History().Len())
			break
		}
	}

	return writeGame(g, cfg, cfg.OutputFile)
}
