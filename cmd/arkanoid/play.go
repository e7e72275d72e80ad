package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/breakline/arkanoid/internal/audio"
	"github.com/breakline/arkanoid/internal/config"
	"github.com/breakline/arkanoid/internal/core"
	"github.com/breakline/arkanoid/internal/engine"
	"github.com/breakline/arkanoid/internal/levels"
	"github.com/breakline/arkanoid/internal/platform/tui"
	"github.com/breakline/arkanoid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/D, arrows - Move paddle (mouse works too)
  Space       - Start / serve / pause / resume
  Esc         - Back to menu (quits from the menu)
  R           - Restart after game over
  M           - Mute sound
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, wider and slower paddle pace
  normal - Stock rules
  hard   - Fewer lives, narrow fast paddle
  fixed  - Same as normal, kept for scripted runs

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --config ./my-rules.yaml
  arkanoid play --levels ./mylevels --seed 7`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "arkanoid"})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath, gameCfg.Gameplay.LeaderboardSize)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - the game still works
		store = nil
	}

	var player *audio.Player
	if !flagNoSound {
		player = audio.NewPlayer()
		if audioErr := player.Initialize(); audioErr != nil {
			logger.Warn("sound disabled", "err", audioErr)
			player = nil
		}
	}

	provider := levels.NewFileProvider(flagLevels, gameCfg.Bricks.Rows, gameCfg.Bricks.Columns)
	recorder := storage.NewRecorder(store, logger)
	session := engine.NewSession(gameCfg, provider, recorder, cfg.Seed)

	var scores tui.ScoreSource
	if store != nil {
		scores = store
	}

	runErr := tui.Run(session, player, scores, cfg)

	if player != nil {
		player.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
