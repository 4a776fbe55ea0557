package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/pandora/internal/config"
	"github.com/spf13/cobra"
)

var playlistStart bool

var playlistCmd = &cobra.Command{
	Use:   "playlist <station-id>",
	Short: "Fetch the next playlist fragment for a station",
	Long: `Fetch the next playlist fragment for a station.

Prints each track with its playback URL. Audio URLs expire quickly;
fetch a fragment right before playing it.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlaylist,
}

func init() {
	playlistCmd.Flags().BoolVar(&playlistStart, "start", false, "Request a station-start fragment")
	rootCmd.AddCommand(playlistCmd)
}

func runPlaylist(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := loginClient(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	tracks, err := client.Playlists().Fragment(ctx, args[0], playlistStart)
	if err != nil {
		return err
	}

	for _, track := range tracks {
		fmt.Printf("%s - %s (%s)\n", track.ArtistName, track.Title, track.AlbumTitle)
		fmt.Printf("    rating: %s  length: %ds  encoding: %s\n", track.Rating, track.TrackLength, track.AudioEncoding)
		fmt.Printf("    audio: %s\n", track.AudioURL)
		if art := track.Art.BestURLForSize(cfg.ArtSize); art != "" {
			fmt.Printf("    art: %s\n", art)
		}
	}
	return nil
}
