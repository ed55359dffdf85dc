package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nao1215/bidscan/internal/config"
	"github.com/nao1215/bidscan/internal/database"
	"github.com/nao1215/bidscan/internal/source"
	"github.com/spf13/cobra"
)

// NewProfilesCmd creates the profiles command group.
func NewProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage the company roster stored in the profile database",
		Long: `Profiles manages the company roster kept in the local profile database.

"bidscan analyze" reads the roster from this database when --profiles is
not given.

Examples:
  # Replace the stored roster with the contents of company_info.json
  bidscan profiles import company_info.json

  # Show the stored roster
  bidscan profiles list`,
	}

	cmd.PersistentFlags().String("db-dir", config.XDGDataDir(),
		"Directory of the profile database")

	cmd.AddCommand(newProfilesImportCmd())
	cmd.AddCommand(newProfilesListCmd())

	return cmd
}

func newProfilesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored roster with a JSON or YAML roster file",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfilesImportCmd,
	}
}

func newProfilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored companies in roster order",
		Args:  cobra.NoArgs,
		RunE:  runProfilesListCmd,
	}
}

// runProfilesImportCmd executes the profiles import command.
func runProfilesImportCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	roster, err := source.LoadRoster(args[0], source.WithRosterLogger(logger))
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ImportRoster(cmd.Context(), roster); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d companies into %s\n", len(roster), db.Path())
	return nil
}

// runProfilesListCmd executes the profiles list command.
func runProfilesListCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir, database.ReadOnlyOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	roster, err := db.LoadRoster(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPANY\tLICENSES\tCERTIFIED ITEMS")
	for _, c := range roster {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", c.Name, len(c.Profile.Licenses), len(c.Profile.CertifiedItemCodes))
	}
	return tw.Flush()
}
