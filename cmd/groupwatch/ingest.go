package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/groupwatch/groupwatch/internal/cli"
	"github.com/groupwatch/groupwatch/internal/engine"
	"github.com/groupwatch/groupwatch/internal/model"
	"github.com/groupwatch/groupwatch/internal/parser"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Ingest a chat log file into the event database",
		Long: `Read raw chat-log lines from a file (or stdin when no file is given),
discard ordinary player chat, classify the remaining system event lines,
and append the results to the local event log in arrival order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().Bool("keep-unknown", true, "persist unclassifiable lines for later audit")
	cmd.Flags().Int("queue-size", 256, "pending line queue size")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	keepUnknown, _ := cmd.Flags().GetBool("keep-unknown")
	queueSize, _ := cmd.Flags().GetInt("queue-size")

	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	var reader io.Reader = os.Stdin
	var bar *progressbar.ProgressBar
	source := "stdin"

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat log file: %w", err)
		}

		bar = progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetDescription("Ingesting chat log..."),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		reader = io.TeeReader(f, bar)
		source = args[0]
	}

	slog.Info("Starting ingestion", "source", source, "keep_unknown", keepUnknown)

	eng := engine.New(parser.NewClassifier(), store, engine.Config{
		QueueSize:   queueSize,
		KeepUnknown: keepUnknown,
	})
	if err := eng.Start(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := eng.Submit(ctx, scanner.Text()); err != nil {
			eng.Stop()
			return fmt.Errorf("ingestion interrupted: %w", err)
		}
	}

	stats := eng.Stop()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	printIngestSummary(stats)
	return nil
}

func printIngestSummary(stats engine.Stats) {
	fmt.Println(cli.FormatTitle("Ingestion summary"))
	fmt.Printf("  lines read:    %d\n", stats.Enqueued)
	fmt.Printf("  chat noise:    %d\n", stats.ChatNoise)
	fmt.Printf("  no event:      %d\n", stats.NoEvent)
	fmt.Printf("  unclassified:  %d\n", stats.Unknown)
	fmt.Printf("  events logged: %d\n", stats.Logged)
	if stats.Errors > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d lines failed to persist", stats.Errors)))
	}

	if len(stats.ByAction) == 0 {
		return
	}

	types := make([]model.ActionType, 0, len(stats.ByAction))
	for t := range stats.ByAction {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Println()
	for _, t := range types {
		fmt.Printf("  %-20s %d\n", t, stats.ByAction[t])
	}
}
