// tunetiles is a music-themed sliding puzzle for the terminal: solve a
// 15-puzzle against a 60 second clock while trivia interrupts, a god
// mode override and a jukebox keep things interesting.
//
// Usage:
//
//	tunetiles play [category]   - Play a session
//	tunetiles categories        - List trivia categories
//	tunetiles scores <category> - Show the top scores for a category
//	tunetiles tracks            - List the jukebox playlist
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible boards
//	--db <path>       - Set database path (default: ~/.tunetiles/tunetiles.db)
//	--catalog <path>  - Use a custom trivia catalog file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagCatalog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tunetiles",
	Short: "Tunetiles - a sliding puzzle with trivia and tunes",
	Long: `Tunetiles is a terminal 15-puzzle wrapped in a music trivia layer.

Slide the tiles back into order before the clock runs out. Every 15
seconds a trivia question interrupts the run: answer right for bonus
points and a short god mode that lets you swap any two tiles, answer
wrong and you lose 15 seconds. Finish with time to spare for the EQ
Master bonus.

Available commands:
  play        - Play a session, optionally naming a trivia category
  categories  - Show all trivia categories
  scores      - View the top scores for a category
  tracks      - Show the jukebox playlist

Examples:
  tunetiles play
  tunetiles play rock
  tunetiles play pop --preset hard
  tunetiles scores rock`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tunetiles/tunetiles.db", "Path to the scores database")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a custom trivia catalog file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tracksCmd)
}
