package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start playing in the current terminal.

Controls:
  Left/A, Right/D  - Walk (held)
  Space/Up/W       - Jump (held; jumps when standing)
  P/Esc            - Pause
  R                - Play again (after winning)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - At most 3 enemies, faster player
  normal - Stock settings
  hard   - 3 to 7 enemies, stronger gravity

Logs are discarded unless --log-file is given, so they never draw over
the game screen.

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --config ./my-platformer.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "platformer")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := platformer.New(cfg, platformer.WithLogger(logger))
	return tui.Run(game, rc, cfg.Input.Hold, logger)
}
