package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groupwatch/groupwatch/internal/cli"
	"github.com/groupwatch/groupwatch/internal/model"
	"github.com/groupwatch/groupwatch/internal/service"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the event log",
	}
	cmd.AddCommand(eventsListCmd())
	return cmd
}

func eventsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged events in arrival order",
		RunE:  runEventsList,
	}

	cmd.Flags().String("type", "", "filter by action type")
	cmd.Flags().String("actor", "", "filter by actor account name")
	cmd.Flags().Int("limit", 50, "maximum number of events to show (0 for all)")
	cmd.Flags().Bool("unknown", false, "show only unclassifiable lines kept for audit")

	return cmd
}

func runEventsList(cmd *cobra.Command, _ []string) error {
	actionType, _ := cmd.Flags().GetString("type")
	actor, _ := cmd.Flags().GetString("actor")
	limit, _ := cmd.Flags().GetInt("limit")
	onlyUnknown, _ := cmd.Flags().GetBool("unknown")

	if actionType != "" && !model.ActionType(actionType).IsValid() {
		return fmt.Errorf("unrecognized action type %q", actionType)
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	records, err := store.ListEvents(ctx, service.EventFilter{
		ActionType:   model.ActionType(actionType),
		ActorAccount: actor,
		Limit:        limit,
		OnlyUnknown:  onlyUnknown,
	})
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(records) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No events found."))
		return nil
	}

	fmt.Print(cli.RenderEventsTable(records))
	return nil
}
