package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/replay"
	"github.com/rotj-game/rotj/internal/screen"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a scripted session without a window",
	Long: `Feed a YAML input script to the game, one step per frame, and print the
last frame as text. The clock advances a fixed 1/fps per frame.

Script format:
  steps:
    - key: enter        # press and release
    - hold: up          # hold for a number of frames, repeating
      frames: 30
    - wait: 60          # idle frames
    - resize: [1280, 720]
    - quit: true

Saves go to the configured database; pass --db to keep them apart.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := replay.Parse(data)
	if err != nil {
		return err
	}

	a, err := setup()
	if err != nil {
		return err
	}

	in := replay.NewInput(script, a.cfg.FPS)
	capture := &replay.Capture{}
	g := game.New(game.OptionsFromConfig(a.cfg, a.logger), in, capture)
	g.SetClock(game.FixedClock{Step: 1 / float64(a.cfg.FPS)})
	g.OnClose(a.close)
	screen.Register(g, a.deps)

	if err := g.Run(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, capture.Last)
	fmt.Fprintf(out, "\nsteps=%d frames=%d state=%s region=%s", in.Played(), capture.Frames, g.ScreenState(), capture.Region)
	if name := g.MapName(); name != "" {
		fmt.Fprintf(out, " map=%s", name)
	}
	fmt.Fprintln(out)
	return nil
}
