package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
)

var epCmd = &cobra.Command{
	Use:   "ep [src] [dst]",
	Short: "Convert an extension pack into an RFC 6902 patch",
	Long: `Parses the extension pack XML in src and writes the equivalent JSON Patch
operations to dst. Inserts become add operations, updates become replace
operations, deprecations extend the entity history and deletes become remove
operations.`,
	Args: cobra.ExactArgs(2),
	RunE: runEP,
}

var patchCmd = &cobra.Command{
	Use:   "patch [src] [patch]",
	Short: "Apply an RFC 6902 patch to a document",
	Long: `Applies the patch file to the document in src. The document is validated
before and after; on failure nothing is written. Without --out the patched
document is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runPatch,
}

// Flags for the patch command.
var (
	patchOut     string
	patchInverse string
)

func init() {
	patchCmd.Flags().StringVarP(&patchOut, "out", "o", "", "Write the patched document to this file")
	patchCmd.Flags().StringVar(&patchInverse, "inverse", "", "Write the operations undoing the patch to this file")

	rootCmd.AddCommand(epCmd)
	rootCmd.AddCommand(patchCmd)
}

func runEP(cmd *cobra.Command, args []string) error {
	if patchService == nil {
		return errors.New("patch service not configured")
	}

	n, err := patchService.ConvertExtensionPack(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("ep %s: %w", args[0], err)
	}
	cmd.Printf("Wrote %d operations to %s\n", n, args[1])
	return nil
}

func runPatch(cmd *cobra.Command, args []string) error {
	if patchService == nil {
		return errors.New("patch service not configured")
	}

	result, err := patchService.Patch(context.Background(), driving.PatchRequest{
		Source:  args[0],
		Patch:   args[1],
		Output:  patchOut,
		Inverse: patchInverse,
	})
	if err != nil {
		return err
	}

	if patchOut == "" {
		cmd.Println(string(result.Document))
		return nil
	}
	cmd.Printf("Applied %d operations, wrote %s\n", result.Operations, patchOut)
	if patchInverse != "" {
		cmd.Printf("Inverse written to %s\n", patchInverse)
	}
	if result.RecordID != "" {
		cmd.Printf("Recorded run %s\n", result.RecordID)
	}
	return nil
}
