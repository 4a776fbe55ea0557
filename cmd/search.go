package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/pandora/internal/config"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var searchCount int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search the catalog for artists, tracks, albums, and stations.

The pandora IDs printed here can be passed to 'pandora stations create'
to seed a new station.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchCount, "count", 0, "Number of results (default: server default)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := loginClient(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	results, err := client.Music().Search(ctx, args[0], searchCount)
	if err != nil {
		return err
	}

	for _, result := range results {
		name := result.Name
		if result.ArtistName != "" {
			name = fmt.Sprintf("%s - %s", result.Name, result.ArtistName)
		}
		fmt.Printf("%s %s  %s\n", runewidth.FillRight(result.Type, 8), result.PandoraID, name)
	}
	return nil
}
