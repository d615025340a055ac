package cmd

import (
	"errors"
	"fmt"

	"model-portfolio/core/database"
	"model-portfolio/feature/catalog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the gallery index from a catalog source",
		Long: `Builds the gallery index and replaces the output file in one step.
When the source is missing nothing is written and the command fails.`,
	}

	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Build the gallery from per-item asset folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, catalog.ModeFolder, "")
		},
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Build the gallery from a CSV or Parquet product table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			return runGenerate(cmd, catalog.ModeTable, file)
		},
	}
	tableCmd.Flags().String("file", "", "product table to read (defaults to gallery.table_file)")

	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Build the gallery from the products database table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, catalog.ModeDB, "")
		},
	}

	cmd.AddCommand(folderCmd, tableCmd, dbCmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, mode, tablePath string) error {
	cfg, logg, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	logg = logg.With(zap.String("mode", mode))

	var db *gorm.DB
	if mode == catalog.ModeDB {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Error("Database unavailable, gallery not written", zap.Error(err))
			return fmt.Errorf("%w: %v", catalog.ErrSourceMissing, err)
		}
		db = conn
	}

	svc := catalog.NewService(afero.NewOsFs(), cfg.Gallery, logg, db)
	src, err := svc.Source(mode, tablePath)
	if err != nil {
		return err
	}

	if _, err := svc.Generate(cmd.Context(), src); err != nil {
		if errors.Is(err, catalog.ErrSourceMissing) {
			logg.Error("Source not found, gallery not written", zap.String("source", src.Name()), zap.Error(err))
		}
		return err
	}
	return nil
}
