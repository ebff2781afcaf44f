//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"gosnake/internal/app"
	"gosnake/internal/game"
	"gosnake/internal/spectate"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closer, err := cfg.OpenLog("[snake] ", os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	state, err := game.New(cfg.Game(), game.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Listen != "" {
		go func() {
			srv := spectate.New(cfg.Spectated(state), 0, logger)
			if err := spectate.ListenAndServe(ctx, cfg.Listen, srv.Router(), logger); err != nil {
				logger.Printf("spectate: %v", err)
			}
		}()
	}

	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(app.New(state, cfg, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
