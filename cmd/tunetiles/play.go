package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Brilu-22/tunetiles/internal/audio"
	"github.com/Brilu-22/tunetiles/internal/config"
	"github.com/Brilu-22/tunetiles/internal/leaderboard"
	"github.com/Brilu-22/tunetiles/internal/platform/tui"
	"github.com/Brilu-22/tunetiles/internal/session"
	"github.com/Brilu-22/tunetiles/internal/storage"
	"github.com/Brilu-22/tunetiles/internal/trivia"
)

var (
	flagConfig   string
	flagPlaylist string
	flagName     string
	flagPreset   string
)

var playCmd = &cobra.Command{
	Use:   "play [category]",
	Short: "Play a session",
	Long: `Play a Tunetiles session.

Without an argument an interactive menu lets you pick the trivia
category. Pass a category id to skip the menu:

  tunetiles play rock

Presets tune the timers for a gentler or harsher run:

  tunetiles play rock --preset hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID := ""
		if len(args) > 0 {
			categoryID = args[0]
		}
		return runPlay(categoryID)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config file")
	playCmd.Flags().StringVar(&flagPlaylist, "playlist", "", "Path to a custom jukebox playlist file")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal or hard")
}

func runPlay(categoryID string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tunetiles",
	})
	// Keep the alt screen clean, only surface real trouble.
	logger.SetLevel(log.WarnLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagPreset != "" {
		preset := config.Preset(flagPreset)
		if !config.ValidPreset(preset) {
			return fmt.Errorf("unknown preset %q (valid: easy, normal, hard)", flagPreset)
		}
		config.ApplyPreset(&cfg, preset)
	}

	catalog, err := trivia.Load(flagCatalog)
	if err != nil {
		return fmt.Errorf("load trivia catalog: %w", err)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	if categoryID == "" {
		categoryID, err = tui.RunCategoryMenu(catalog, width, height)
		if err != nil {
			return err
		}
		if categoryID == "" {
			// Quit from the menu, nothing to do.
			return nil
		}
	}

	category, ok := catalog.Category(categoryID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown category %q. Valid categories: %s\n",
			categoryID, strings.Join(catalog.IDs(), ", "))
		fmt.Fprintln(os.Stderr, "Run 'tunetiles categories' for titles and question counts.")
		os.Exit(1)
	}

	playlist, err := audio.LoadPlaylist(flagPlaylist)
	if err != nil {
		return fmt.Errorf("load playlist: %w", err)
	}

	kv := storage.OpenDefault(flagDBPath, logger)
	defer kv.Close()

	opts := session.Options{
		Config:   cfg,
		Category: category,
		Seed:     flagSeed,
		Scores:   leaderboard.NewStore(kv, logger),
		Name:     flagName,
		Logger:   logger,
	}
	return tui.Run(opts, audio.NewPlayer(playlist.Tracks))
}
