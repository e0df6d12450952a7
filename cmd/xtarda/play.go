package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
	"github.com/vovakirdan/xtarda-rescue/internal/platform/audio"
	"github.com/vovakirdan/xtarda-rescue/internal/platform/tui"
	"github.com/vovakirdan/xtarda-rescue/internal/registry"
	"github.com/vovakirdan/xtarda-rescue/internal/storage"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Enter/Space   - Start / continue to the next level
  Down/S        - Drop the pod
  Up/W          - Launch the pod once the man is aboard
  Left/Right    - Steer the pod
  P             - Pause / resume
  R             - Restart (after game over)
  ?             - Toggle help
  Q/Esc         - Quit

Land the pod on the pad, wait for the man to board, then fly him up to
the mothership. Docking without the auto-pilot earns a bonus pod.

Examples:
  xtarda play
  xtarda play --difficulty easy --mute
  xtarda play --seed 42 --no-penalty
  xtarda play --spectate :8080   # Watch at ws://localhost:8080/ws`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.xtarda/xtarda.log", "Log file (the terminal is busy drawing the game)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Pilot name stored with your runs")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logs go to a file while the alternate screen is active
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
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

	game, err := registry.Create(lander.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Player: flagPlayer,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if hub := startSpectating(ctx, logger); hub != nil {
		opts.Spec = hub
	}

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
			player = nil
		} else {
			opts.Sound = player
		}
	}

	logger.Info("starting", "difficulty", flagDifficulty, "no_penalty", landerConfig.Debug.NoPenalty, "size", fmt.Sprintf("%dx%d", width, height))
	runErr := tui.Run(game, cfg, opts)

	// Release collaborators before potential exit
	cancel()
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game crashed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
