// platformer is a terminal platform game: stomp every enemy to win a round.
//
// Usage:
//
//	platformer [play]        - Play in this terminal
//	platformer serve         - Start SSH server for remote play
//	platformer sim           - Run headless rounds and print statistics
//	platformer list          - List available games
//	platformer config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - stomp the enemies in your terminal",
	Long: `Platformer is a small physics platform game for the terminal.

Jump on every enemy to win the round. Touching an enemy any other way
loses it, and a new round starts after a short delay.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  sim      - Run headless rounds with a scripted player
  list     - Show all available games
  config   - Print the default configuration

Examples:
  platformer
  platformer play --difficulty easy
  platformer serve --ssh :2222
  platformer sim --rounds 1000 --policy chase`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	config.ApplyPlatformerPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.PlatformerConfig{}, err
	}
	if err := platformer.ParamsFromConfig(cfg).Validate(); err != nil {
		return config.PlatformerConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}
