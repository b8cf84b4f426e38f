package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Brilu-22/tunetiles/internal/leaderboard"
	"github.com/Brilu-22/tunetiles/internal/storage"
	"github.com/Brilu-22/tunetiles/internal/trivia"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <category>",
	Short: "Show the top scores for a category",
	Long: `Display the leaderboard for the specified trivia category.

Examples:
  tunetiles scores rock
  tunetiles scores pop`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	categoryID := args[0]

	// Resolve the category title from the catalog
	catalog, err := trivia.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trivia catalog: %v\n", err)
		os.Exit(1)
	}
	category, ok := catalog.Category(categoryID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", categoryID)
		fmt.Fprintln(os.Stderr, "Run 'tunetiles categories' to see what's available.")
		os.Exit(1)
	}

	// Open score storage
	kv, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	board := leaderboard.NewStore(kv, log.New(os.Stderr)).Load(categoryID)

	// Display scores
	fmt.Printf("Top Scores - %s\n", category.Title)
	fmt.Println()

	if len(board) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tunetiles play %s' to set the first score!\n", categoryID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "EQ")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "--")

	special := false
	for i, entry := range board {
		marker := ""
		if entry.Special {
			marker = "*"
			special = true
		}
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Name, entry.Score, marker)
	}

	if special {
		fmt.Println()
		fmt.Println("* EQ Master run (solved with time to spare)")
	}
}
