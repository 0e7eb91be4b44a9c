package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groupwatch/groupwatch/internal/cli"
	"github.com/groupwatch/groupwatch/internal/extract"
)

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with application templates",
	}
	cmd.AddCommand(templateExtractCmd())
	return cmd
}

func templateExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract applicant fields from an application template",
		Long: `Pull the in-game nickname, account name, and MTA serial out of a
captured application text block. Fields are extracted independently;
a missing field never blocks the others.`,
		Args: cobra.ExactArgs(1),
		RunE: runTemplateExtract,
	}
}

func runTemplateExtract(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	fields := extract.ExtractTemplateInfo(string(data))
	if fields.IsEmpty() {
		fmt.Println(cli.FormatWarning("No template fields found."))
		return nil
	}

	printField := func(label, value string) {
		if value == "" {
			value = cli.SubtleStyle.Render("(missing)")
		}
		fmt.Printf("  %-12s %s\n", label, value)
	}

	fmt.Println(cli.FormatTitle("Application fields"))
	printField("nickname", fields.Nickname)
	printField("account", fields.AccountName)
	printField("serial", fields.MTASerial)
	return nil
}
