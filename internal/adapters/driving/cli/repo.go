package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
)

var repoCmd = &cobra.Command{
	Use:   "repo [src] [dst]",
	Short: "Normalise a FIX Repository into a JSON document",
	Long: `Reads the XML fragments in src, normalises them into one canonical document
and writes it to dst, named after the protocol version (e.g. fix-5-0-sp2.json).

Extension packs (--ep) are applied first, then patch files (--patch), each in
the order given. The document is validated before and after every amendment.`,
	Args: cobra.ExactArgs(2),
	RunE: runRepo,
}

// Flags for the repo command.
var (
	repoExtensionPacks []string
	repoPatches        []string
)

func init() {
	repoCmd.Flags().StringArrayVar(&repoExtensionPacks, "ep", nil, "Extension pack XML to apply (repeatable)")
	repoCmd.Flags().StringArrayVarP(&repoPatches, "patch", "p", nil, "RFC 6902 patch file to apply (repeatable)")
	rootCmd.AddCommand(repoCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	if repositoryService == nil {
		return errors.New("repository service not configured")
	}

	req := driving.BuildRequest{
		Source:         args[0],
		Destination:    args[1],
		ExtensionPacks: repoExtensionPacks,
		Patches:        repoPatches,
		Command:        commandLine(cmd, args),
	}
	result, err := repositoryService.Build(context.Background(), req)
	if err != nil {
		return fmt.Errorf("repo %s: %w", args[0], err)
	}

	cmd.Printf("Wrote %s (%s)\n", result.Path, result.Document.Meta.Version)
	if result.RecordID != "" {
		cmd.Printf("Recorded run %s\n", result.RecordID)
	}
	return nil
}

// commandLine reconstructs the invocation recorded in the document.
func commandLine(cmd *cobra.Command, args []string) string {
	parts := []string{cmd.CommandPath()}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			for _, v := range sv.GetSlice() {
				parts = append(parts, "--"+f.Name, v)
			}
			return
		}
		parts = append(parts, "--"+f.Name, f.Value.String())
	})
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
