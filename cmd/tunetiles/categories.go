package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Brilu-22/tunetiles/internal/trivia"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all trivia categories",
	Long:  `Shows every trivia category in the question catalog.`,
	Run:   runCategories,
}

func runCategories(cmd *cobra.Command, args []string) {
	catalog, err := trivia.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trivia catalog: %v\n", err)
		os.Exit(1)
	}

	if len(catalog.Categories) == 0 {
		fmt.Println("No categories available.")
		return
	}

	fmt.Println("Available categories:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range catalog.Categories {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Questions")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "---------")

	// Print categories
	for _, c := range catalog.Categories {
		fmt.Printf("  %-*s  %-24s  %d\n", maxIDLen, c.ID, c.Title, len(c.Questions))
	}

	fmt.Println()
	fmt.Println("Run 'tunetiles play <id>' to play a category.")
}
