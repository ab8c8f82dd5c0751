// rotj is a tile-based adventure with a letterboxed window and three save
// slots.
//
// Usage:
//
//	rotj play                     - Open the game window
//	rotj replay <script.yaml>     - Run a scripted session headless and print the last frame
//	rotj tactics <character>      - Show the tactic slots a character learns
//	rotj saves list|erase|copy    - Manage the save slots
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.rotj/config.yaml, then ./configs/config.yaml)
//	--fps <rate>        - Frame rate cap
//	--db <path>         - Save slot database
//	--data <dir>        - Read maps, stats and tables from a directory instead of the built-in set
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotj-game/rotj/assets"
	"github.com/rotj-game/rotj/internal/config"
	"github.com/rotj-game/rotj/internal/logging"
	"github.com/rotj-game/rotj/internal/screen"
	"github.com/rotj-game/rotj/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagDataDir  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rotj",
	Short: "ROTJ - a tile adventure of captains and robbers",
	Long: `ROTJ opens a fixed-size tile world in a resizable window. The picture
keeps its aspect ratio and is letterboxed inside the window.

Examples:
  rotj play
  rotj play --fps 30 --db ./saves.db
  rotj replay scripts/new_game.yaml
  rotj tactics moroni --level 12
  rotj saves list`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save slot database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "Directory with maps/, stats/, tactics.yaml and items.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(tacticsCmd)
	rootCmd.AddCommand(savesCmd)
}

// loadConfig reads the config file and applies the global flags over it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.SaveDB = flagDBPath
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// dataFS returns the game data: the embedded set unless a directory is
// configured.
func dataFS(cfg config.Config) fs.FS {
	if cfg.DataDir != "" {
		return os.DirFS(cfg.DataDir)
	}
	return assets.FS
}

// app bundles what every command that touches game data needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
	store    *storage.Store
	deps     *screen.Deps
}

func setup() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg.SaveDB)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open save slots: %w", err)
	}
	deps, err := screen.LoadDeps(dataFS(cfg), store)
	if err != nil {
		store.Close()
		closeLog()
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, closeLog: closeLog, store: store, deps: deps}, nil
}

// close releases the save database and the log file.
func (a *app) close() error {
	err := a.store.Close()
	if cerr := a.closeLog(); err == nil {
		err = cerr
	}
	return err
}
