package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groupwatch/groupwatch/internal/cli"
)

func playersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Inspect the player roster",
	}
	cmd.AddCommand(playersListCmd())
	return cmd
}

func playersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known players, current members first",
		RunE:  runPlayersList,
	}
}

func runPlayersList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	players, err := store.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}

	if len(players) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No players recorded."))
		return nil
	}

	fmt.Print(cli.RenderPlayersTable(players))
	return nil
}
