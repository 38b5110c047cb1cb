// worms is a terminal artillery game on destructible terrain.
//
// Usage:
//
//	worms list              - List available modes
//	worms play <mode>       - Play a mode
//	worms menu              - Pick modes interactively
//	worms serve             - Start SSH server for remote play
//	worms scores <mode>     - Show scores and recent matches
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible terrain
//	--db <path>           - Set database path (default: ~/.worms/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worms/internal/games/worms"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// logger is configured by the root command before any subcommand runs.
	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worms",
	Short: "Worms - artillery on destructible terrain in your terminal",
	Long: `Worms is a turn-based artillery game played on procedurally generated,
destructible terrain. Every shot carves the landscape; worms climb small
ledges on their own and fall when the ground beneath them is blown away.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View scores and match history

Examples:
  worms list
  worms play worms
  worms play worms_sandbox --seed 42
  worms menu
  worms serve --ssh :2222 --metrics :9090
  worms scores worms`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.worms/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging builds the shared logger. Interactive commands own the
// terminal, so without --log-file they log nowhere; serve logs to stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		out, logSink = f, f
	case cmd == serveCmd:
		out = os.Stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "worms",
	})
	worms.SetLogger(logger)
	return nil
}
