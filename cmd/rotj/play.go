package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/platform/desktop"
	"github.com/rotj-game/rotj/internal/screen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and start at the title screen.

Controls:
  Arrows / WASD  - Move, pick a slot
  Enter / Space  - Confirm, open the status panel
  X / Backspace  - Back
  S              - Record the game in its slot
  C / E          - Copy / erase a slot in the slot menu
  Escape         - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup()
	if err != nil {
		return err
	}

	cfg := a.cfg
	opts := desktop.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Cols:   cfg.Virtual.Cols,
		Rows:   cfg.Virtual.Rows,
		CellW:  cfg.Virtual.CellWidth,
		CellH:  cfg.Virtual.CellHeight,
		TPS:    cfg.FPS,
		Border: cfg.BorderColor,
	}
	in, win := desktop.New(opts)
	gameOpts := game.OptionsFromConfig(cfg, a.logger)
	gameOpts.Console = cmd.ErrOrStderr()
	g := game.New(gameOpts, in, win)
	g.OnClose(a.close)
	screen.Register(g, a.deps)

	a.logger.Info("starting",
		"window", [2]int{cfg.Window.Width, cfg.Window.Height},
		"fps", cfg.FPS,
		"saves", cfg.SaveDB)
	return desktop.Run(ctx, g, in, win, opts)
}
