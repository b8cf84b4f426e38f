package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Brilu-22/tunetiles/internal/audio"
)

var flagTracksPlaylist string

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the jukebox playlist",
	Long:  `Shows every track the in-game jukebox will cycle through.`,
	Run:   runTracks,
}

func init() {
	tracksCmd.Flags().StringVar(&flagTracksPlaylist, "playlist", "", "Path to a custom jukebox playlist file")
}

func runTracks(cmd *cobra.Command, args []string) {
	playlist, err := audio.LoadPlaylist(flagTracksPlaylist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading playlist: %v\n", err)
		os.Exit(1)
	}

	jukebox := audio.NewPlayer(playlist.Tracks)
	tracks := jukebox.Tracks()
	if len(tracks) == 0 {
		fmt.Println("No tracks available.")
		return
	}

	fmt.Println("Jukebox playlist:")
	fmt.Println()

	for i, track := range tracks {
		length := track.Duration()
		fmt.Printf("  %2d. %s - %s (%s, %d) %d:%02d\n",
			i+1, track.Artist, track.Title, track.Album, track.Year,
			int(length.Minutes()), int(length.Seconds())%60)
	}

	fmt.Println()
	fmt.Printf("%d tracks. The jukebox starts paused; press 'm' in game to play.\n", len(tracks))
}
