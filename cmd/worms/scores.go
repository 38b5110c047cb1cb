package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worms/internal/registry"
	"github.com/vovakirdan/tui-worms/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show scores and recent matches for a mode",
	Long: `Display the best scores (pixels destroyed) for the specified mode.
Modes that keep match records also list their most recent matches.

Examples:
  worms scores worms
  worms scores worms_sandbox --limit 5
  worms scores worms --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'worms list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Scores for %s cleared.\n", game.Title())
		return
	}

	if err := printScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if _, ok := game.(registry.MatchReporter); ok {
		if err := printMatches(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		}
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Most Destroyed - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'worms play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Pixels", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printMatches(store *storage.Store, gameID string) error {
	matches, err := store.RecentMatches(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent Matches")
	fmt.Println()
	if len(matches) == 0 {
		fmt.Println("No matches finished yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-9s  %-8s  %-16s  %s\n", "Winner", "Turns", "Destroyed", "Time", "Date", "ID")
	fmt.Printf("  %-8s  %-6s  %-9s  %-8s  %-16s  %s\n", "------", "-----", "---------", "----", "----", "--")
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "draw"
		}
		fmt.Printf("  %-8s  %-6d  %-9d  %-8s  %-16s  %s\n",
			winner, m.Turns, m.Destroyed,
			m.Duration.Round(time.Second).String(),
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.ID[:min(8, len(m.ID))],
		)
	}
	return nil
}
