package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Shows the resolved settings: values from fixtodict.toml merged over the
defaults. Use "config set" to change a value.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Stores a value under a dot-separated key, e.g.

  fixtodict config set output.indent 4
  fixtodict config set policy.extension_pack.components components
  fixtodict config set docs.typos.Recieve Receive`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("[output]")
	cmd.Printf("  indent: %d\n", settings.Indent)
	cmd.Printf("  copyright: %s\n", settings.Copyright)
	cmd.Println()

	cmd.Println("[schema]")
	if settings.SchemaPath == "" {
		cmd.Println("  path: (embedded)")
	} else {
		cmd.Printf("  path: %s\n", settings.SchemaPath)
	}
	cmd.Println()

	cmd.Println("[fragments]")
	for _, kind := range sortedKeys(settings.Fragments) {
		cmd.Printf("  %s: %s\n", kind, settings.Fragments[kind])
	}
	cmd.Println()

	cmd.Println("[policy]")
	cmd.Printf("  enum_suppressions: %s\n", strings.Join(settings.Policy.EnumSuppressions, ", "))
	for _, kind := range sortedKeys(settings.Policy.ExtensionPackExtractors) {
		cmd.Printf("  extension_pack.%s: %s\n", kind, settings.Policy.ExtensionPackExtractors[kind])
	}
	cmd.Println()

	cmd.Println("[ledger]")
	cmd.Printf("  enabled: %t\n", settings.Ledger.Enabled)
	if settings.Ledger.Dir != "" {
		cmd.Printf("  path: %s\n", settings.Ledger.Dir)
	}

	if len(settings.Typos) > 0 {
		cmd.Println()
		cmd.Println("[docs.typos]")
		for _, from := range sortedKeys(settings.Typos) {
			cmd.Printf("  %s: %s\n", from, settings.Typos[from])
		}
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], parseValue(args[1])
	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	// Reject values the settings cannot resolve.
	if _, err := settingsService.Get(); err != nil {
		return fmt.Errorf("%s stored but invalid: %w", key, err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

// parseValue converts a command-line value into a TOML scalar.
func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return s
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
