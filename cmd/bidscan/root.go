package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/bidscan/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for bidscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bidscan",
		Short: "Tender announcement analyzer and company matcher",
		Long: `bidscan analyzes public tender announcements collected by a crawler.

For every announcement it extracts the participation eligibility clause,
required license categories, coded procurement items, contract method and
submission channel, and scores each company in a roster as suitable,
needs review or unsuitable.

Company rosters can be read from a JSON/YAML file or imported once into the
local profile database with "bidscan profiles import".`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewProfilesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// newLogger returns the stderr logger selected by the global flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	if asJSON, err := cmd.Flags().GetBool("log-json"); err == nil && asJSON {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}
