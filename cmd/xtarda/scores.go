package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/xtarda-rescue/internal/platform/tui"
	"github.com/vovakirdan/xtarda-rescue/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagBestOf      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, most men rescued first.

Examples:
  xtarda scores
  xtarda scores --limit 25
  xtarda scores --player ada
  xtarda scores -i             # Scrollable table
  xtarda scores --clear        # Delete every stored run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scrollable scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
	scoresCmd.Flags().StringVar(&flagBestOf, "player", "", "Show the best run of one pilot")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, os.Getenv("USER"), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return

	case flagBestOf != "":
		best, ok, err := store.Best(flagBestOf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Printf("No runs recorded for %s.\n", flagBestOf)
			return
		}
		fmt.Printf("Best run of %s: %d rescued, level %d, %d precision docks (%s)\n",
			best.Player, best.Rescued, best.Level, best.Precision, best.CreatedAt.Format("2006-01-02 15:04"))
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Xtarda Rescue - Top Pilots")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'xtarda play' and rescue someone to get on the board!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-7s  %s\n", "Rank", "Pilot", "Rescued", "Level", "Precise", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-7s  %s\n", "----", "-----", "-------", "-----", "-------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-16s  %-7d  %-5d  %-7d  %s\n",
			i+1, r.Player, r.Rescued, r.Level, r.Precision, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("%d runs, best %d rescued, average %.1f, highest level %d\n",
			st.Runs, st.BestRescued, st.AvgRescued, st.MaxLevel)
	}
}
