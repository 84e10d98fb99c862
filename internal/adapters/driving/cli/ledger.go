package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "List recorded generation runs",
	Args:  cobra.NoArgs,
	RunE:  runLedgerList,
}

var ledgerShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one generation run",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerShow,
}

// ledgerLimit is a flag for the ledger command.
var ledgerLimit int

func init() {
	ledgerCmd.Flags().IntVarP(&ledgerLimit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	ledgerCmd.AddCommand(ledgerShowCmd)
	rootCmd.AddCommand(ledgerCmd)
}

func runLedgerList(cmd *cobra.Command, _ []string) error {
	if ledgerService == nil {
		return errors.New("ledger service not configured")
	}

	recs, err := ledgerService.List(context.Background(), ledgerLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(recs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for i := range recs {
		cmd.Printf("%s  %s  %-5s  %s\n", recs[i].ID, recs[i].CreatedAt.Format(time.RFC3339),
			recs[i].Operation, recs[i].Output)
	}
	return nil
}

func runLedgerShow(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errors.New("ledger service not configured")
	}

	rec, err := ledgerService.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run not found: %s", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run: %s\n", rec.ID)
	cmd.Printf("  Operation: %s\n", rec.Operation)
	cmd.Printf("  Version: %s\n", rec.Version)
	cmd.Printf("  Source: %s\n", rec.Source)
	cmd.Printf("  Output: %s\n", rec.Output)
	if rec.Checksum != "" {
		cmd.Printf("  MD5: %s\n", rec.Checksum)
	}
	if len(rec.Patches) > 0 {
		cmd.Printf("  Patches: %s\n", strings.Join(rec.Patches, ", "))
	}
	cmd.Printf("  Created: %s\n", rec.CreatedAt.Format(time.RFC3339))
	return nil
}
