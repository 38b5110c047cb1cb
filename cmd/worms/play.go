package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-worms/internal/config"
	"github.com/vovakirdan/tui-worms/internal/core"
	"github.com/vovakirdan/tui-worms/internal/games/worms"
	"github.com/vovakirdan/tui-worms/internal/platform/tui"
	"github.com/vovakirdan/tui-worms/internal/registry"
	"github.com/vovakirdan/tui-worms/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right, A/D  - Walk (small ledges are climbed automatically)
  W/Enter          - Jump
  Up/Down, K/J     - Aim
  Space/F          - Fire
  E/Tab            - End turn
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Longer turns, tougher worms
  normal - Config values as they are
  hard   - Short turns, more worms with less health

Examples:
  worms play worms
  worms play worms --difficulty hard
  worms play worms_sandbox --seed 1234
  worms play worms --config ./my-worms.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'worms list' to see available modes.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags checks --config and --difficulty and hands them to the
// game package. A broken config file is reported instead of silently
// falling back to the defaults.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadWorms(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
	}
	worms.SetConfigPath(flagConfig)
	worms.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the simulation view to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
