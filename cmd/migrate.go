package cmd

import (
	"model-portfolio/feature/catalog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Convert the asset folder tree into a product table",
		Long: `Writes one product row per asset folder, filled from its metadata file.
The output format follows the file extension (.csv or .parquet).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			cfg, logg, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer logg.Sync()

			svc := catalog.NewService(afero.NewOsFs(), cfg.Gallery, logg, nil)
			rows, err := svc.Migrate(cmd.Context(), out)
			if err != nil {
				logg.Error("Migration failed", zap.Error(err))
				return err
			}

			logg.Info("Migration complete", zap.Int("rows", rows))
			return nil
		},
	}

	cmd.Flags().String("out", "", "product table to write (defaults to gallery.table_file)")
	return cmd
}
