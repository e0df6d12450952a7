// xtarda is a lunar-lander rescue game for the terminal.
//
// Usage:
//
//	xtarda play              - Play in this terminal
//	xtarda serve             - Start SSH server for remote play
//	xtarda scores            - Show the best runs
//	xtarda config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Lander config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--no-penalty          - Explosions do not cost a pod
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.xtarda/runs.db)
//	--log-level <level>   - debug, info, warn or error
//	--spectate <addr>     - Stream runs to WebSocket viewers at ws://<addr>/ws
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/xtarda-rescue/internal/config"
	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
	"github.com/vovakirdan/xtarda-rescue/internal/platform/spectate"
	"github.com/vovakirdan/xtarda-rescue/internal/registry"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagNoPenalty  bool
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagSpectate   string

	// landerConfig is the effective configuration after flags are applied.
	landerConfig config.LanderConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xtarda",
	Short: "Xtarda Rescue - fly stranded men home through the asteroids",
	Long: `Xtarda Rescue is a lunar-lander rescue game for the terminal.

Drop a pod from the mothership, land it on the pad, pick up the man
and fly him back up through the drifting asteroid rows. Every man
rescued counts; lose all your pods and the run is over.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  xtarda play
  xtarda play --difficulty hard
  xtarda serve --ssh :2222
  xtarda scores --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagNoPenalty, "no-penalty", false, "Explosions do not cost a pod")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.xtarda/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSpectate, "spectate", "", "Serve live runs to WebSocket viewers on this address (e.g. :8080)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the lander configuration and registers a factory
// that builds games from it.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadLander(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(strings.ToLower(flagDifficulty))
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyLanderPreset(&cfg, preset)
	}
	if flagNoPenalty {
		cfg.Debug.NoPenalty = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	landerConfig = cfg
	registry.Replace(lander.ID, lander.Factory(cfg))
	return nil
}

// newLogger builds the logger shared by a command.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "xtarda",
		Level:           level,
	})
	return logger, nil
}

// startSpectating runs a spectator hub on flagSpectate. It returns nil
// when spectating is off. The hub stops when ctx is done.
func startSpectating(ctx context.Context, logger *log.Logger) *spectate.Hub {
	if flagSpectate == "" {
		return nil
	}
	hub := spectate.NewHub(logger.WithPrefix("spectate"))
	go hub.Run(ctx)
	go func() {
		if err := hub.ListenAndServe(ctx, flagSpectate); err != nil {
			logger.Error("spectator server stopped", "error", err)
		}
	}()
	return hub
}

// openLogFile opens path for appending, creating parent directories.
// A leading ~ is expanded to the home directory.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
