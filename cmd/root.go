package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the portfolio command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "3D model portfolio gallery tools",
		Long: `Portfolio builds the gallery index of a static 3D model portfolio site.

The index is generated from per-item asset folders, a product table (CSV or
Parquet) or a database table, then verified, published to object storage or
previewed with the built-in server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config-dir", ".", "directory holding the .env file")

	cmd.AddCommand(
		newGenerateCmd(),
		newVerifyCmd(),
		newMigrateCmd(),
		newPublishCmd(),
		newServeCmd(),
	)

	return cmd
}
