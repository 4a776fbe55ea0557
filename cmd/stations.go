package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/pandora/internal/config"
	"github.com/spf13/cobra"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List and manage stations",
	RunE:  runStationsList,
}

var stationsCreateCmd = &cobra.Command{
	Use:   "create <pandora-id>",
	Short: "Create a station from a search result",
	Args:  cobra.ExactArgs(1),
	RunE:  runStationsCreate,
}

var stationsRenameCmd = &cobra.Command{
	Use:   "rename <station-id> <name>",
	Short: "Rename a station",
	Long: `Rename a station.

Names longer than the service's 64 character budget are truncated
with an ellipsis before being sent.`,
	Args: cobra.ExactArgs(2),
	RunE: runStationsRename,
}

var stationsRemoveCmd = &cobra.Command{
	Use:   "remove <station-id>",
	Short: "Delete a station",
	Args:  cobra.ExactArgs(1),
	RunE:  runStationsRemove,
}

func init() {
	stationsCmd.AddCommand(stationsCreateCmd)
	stationsCmd.AddCommand(stationsRenameCmd)
	stationsCmd.AddCommand(stationsRemoveCmd)
	rootCmd.AddCommand(stationsCmd)
}

func runStationsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := loginClient(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	stations, err := client.Stations().List(ctx)
	if err != nil {
		return err
	}

	for _, station := range stations {
		flags := ""
		if station.IsShuffle {
			flags += " [shuffle]"
		}
		if station.IsThumbprint {
			flags += " [thumbprint]"
		}
		if station.IsShared {
			flags += " [shared]"
		}
		fmt.Printf("%s  %s%s\n", station.StationID, station.Name, flags)
		if art := station.Art.BestURLForSize(cfg.ArtSize); art != "" {
			fmt.Printf("    art: %s\n", art)
		}
	}
	return nil
}

func runStationsCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := loginClient(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	station, err := client.Stations().Create(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Created station %s (%s)\n", station.Name, station.StationID)
	return nil
}

func runStationsRename(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := loginClient(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	details, err := client.Stations().Details(ctx, args[0])
	if err != nil {
		return err
	}
	station, err := client.Stations().Update(ctx, args[0], args[1], details.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Renamed station to %s\n", station.Name)
	return nil
}

func runStationsRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := loginClient(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	if err := client.Stations().Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Station removed")
	return nil
}
