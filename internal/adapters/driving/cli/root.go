// Package cli implements the fixtodict command line on top of cobra.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose    bool
	configPath string
)

// Services used by the commands. Tests replace them directly.
var (
	repositoryService driving.RepositoryService
	patchService      driving.PatchService
	documentService   driving.DocumentService
	ledgerService     driving.LedgerService
	settingsService   driving.SettingsService
)

// Services bundles the driving ports the commands call.
type Services struct {
	Repository driving.RepositoryService
	Patch      driving.PatchService
	Document   driving.DocumentService
	Ledger     driving.LedgerService
	Settings   driving.SettingsService
}

// Bootstrap builds the services once flags are parsed. The returned
// function releases their resources.
type Bootstrap func(configPath string) (Services, func() error, error)

var (
	bootstrap Bootstrap
	shutdown  func() error
)

var rootCmd = &cobra.Command{
	Use:   "fixtodict",
	Short: "Normalise FIX Repository data into JSON",
	Long: `fixtodict turns the XML fragments of a FIX Repository into one canonical,
schema-validated JSON document, and amends such documents with extension
packs and RFC 6902 patches.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every pipeline stage")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default ./fixtodict.toml)")
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	repositoryService = s.Repository
	patchService = s.Patch
	documentService = s.Document
	ledgerService = s.Ledger
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || cmd.Name() == versionCmd.Name() {
		return nil
	}

	s, closeFn, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	SetServices(s)
	shutdown = closeFn
	return nil
}

func teardown() error {
	if shutdown == nil {
		return nil
	}
	err := shutdown()
	shutdown = nil
	return err
}

// Execute runs the root command with services built by b and returns the
// process exit code.
func Execute(b Bootstrap) int {
	bootstrap = b
	defer func() { bootstrap = nil }()

	if err := rootCmd.Execute(); err != nil {
		// PersistentPostRunE does not run after a failed command.
		err = errors.Join(err, teardown())
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
	return 0
}
