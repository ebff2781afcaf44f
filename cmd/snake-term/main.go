package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gosnake/internal/app"
	"gosnake/internal/game"
	"gosnake/internal/spectate"
	"gosnake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "snake-term:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	// The screen owns stdout, so logs only go to a file if one is given.
	logger, closer, err := cfg.OpenLog("[snake-term] ", nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	state, err := game.New(cfg.Game(), game.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

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

	return term.New(screen, state, cfg.Interval, logger).Run(ctx)
}
