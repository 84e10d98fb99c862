package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate [src]",
	Short: "Validate a document against the canonical schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the canonical JSON Schema",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

var reviewCmd = &cobra.Command{
	Use:   "review [src]",
	Short: "Summarise a document",
	Long:  `Prints entity counts per kind and message tallies per section and category.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Validate(context.Background(), args[0]); err != nil {
		return err
	}
	cmd.Printf("%s is valid\n", args[0])
	return nil
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	raw := documentService.Schema()
	if len(raw) == 0 {
		return errors.New("no schema loaded")
	}
	cmd.Println(strings.TrimSpace(string(raw)))
	return nil
}

func runReview(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	review, err := documentService.Review(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("review %s: %w", args[0], err)
	}

	cmd.Printf("%s\n\n", review.Version)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, kind := range domain.DocumentKinds {
		fmt.Fprintf(w, "  %s\t%d\n", kind, review.Counts[kind])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(review.Sections) == 0 {
		return nil
	}
	cmd.Println()
	cmd.Println("Messages by section:")
	for _, s := range review.Sections {
		cmd.Printf("  %s: %d\n", s.ID, s.Messages)
		for _, c := range s.Categories {
			cmd.Printf("    %s: %d\n", c.ID, c.Messages)
		}
	}
	return nil
}
