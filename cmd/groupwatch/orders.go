package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groupwatch/groupwatch/internal/cli"
	"github.com/groupwatch/groupwatch/internal/extract"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Work with order submissions",
	}
	cmd.AddCommand(ordersExtractCmd())
	return cmd
}

func ordersExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract order claims from a submission file",
		Long: `Parse a captured order submission and print the claims it contains,
cross-referenced against the order catalog. With --html the input is
treated as raw HTML: it is normalized to plain text first, and proof
links are taken from anchor tags.

Validation is all-or-nothing: a single malformed block invalidates the
entire submission.`,
		Args: cobra.ExactArgs(1),
		RunE: runOrdersExtract,
	}

	cmd.Flags().Bool("html", false, "treat the input as raw HTML")
	cmd.Flags().Bool("resolve-images", false, "resolve proof URLs to direct image links (network)")

	return cmd
}

func runOrdersExtract(cmd *cobra.Command, args []string) error {
	isHTML, _ := cmd.Flags().GetBool("html")
	resolveImages, _ := cmd.Flags().GetBool("resolve-images")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read submission: %w", err)
	}

	text := string(data)
	rawHTML := ""
	if isHTML {
		rawHTML = text
		text = extract.FormatHTMLContent(rawHTML)
	}

	claims := extract.ExtractUserOrders(text, rawHTML)
	if len(claims) == 0 {
		fmt.Println(cli.FormatWarning("No valid order claims found; the submission was rejected."))
		return nil
	}

	if resolveImages {
		ctx := cmd.Context()
		for i := range claims {
			if direct := extract.ResolveDirectImageURL(ctx, claims[i].ProofURL); direct != "" {
				claims[i].ProofURL = direct
			}
		}
	}

	fmt.Print(cli.RenderOrderClaims(claims))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d claim(s) extracted", len(claims))))
	return nil
}
