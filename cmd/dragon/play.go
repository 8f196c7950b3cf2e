package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/games/dragon"
	"github.com/vovakirdan/dragon-arcade/internal/platform/tui"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

var (
	flagConfig    string
	flagFPS       int
	flagSeed      int64
	flagLogPath   string
	flagLogLevel  string
	flagNoHistory bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dragon Eat Dragon",
	Long: `Start a game.

Controls:
  Arrows/WASD  - Move
  R            - Restart (after becoming the OMEGA DRAGON)
  Q/Esc        - Quit
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Quit immediately

Examples:
  dragon play
  dragon play --seed 1234
  dragon play --config ./my-dragon.yaml --log - --no-history`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.fps from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagLogPath, "log", defaultLogPath, `Log file ("-" disables logging)`)
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record runs")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, logFile, err := openLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, source, err := config.LoadDragon(flagConfig)
	if err != nil {
		return err
	}
	dragon.SetConfig(cfg)
	logger.Info("config loaded", "source", source)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	if cfg.Timing.FPS > 0 {
		rc.TickRate = cfg.Timing.FPS
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed

	game, err := registry.Create("dragon")
	if err != nil {
		return err
	}

	var store *storage.Store
	if !flagNoHistory {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// The game still works without history
			fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
			logger.Warn("run history disabled", "err", err)
			store = nil
		}
	}

	runErr := tui.Run(game, store, logger, rc)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Error("game crashed", "err", runErr)
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
