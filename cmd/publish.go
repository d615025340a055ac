package cmd

import (
	"model-portfolio/core/storage"
	"model-portfolio/feature/publish"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the gallery and its assets to object storage",
		Long: `Compares the local asset tree and gallery file with the storage bucket and
uploads whatever is missing or changed. The gallery file is uploaded last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			prune, _ := cmd.Flags().GetBool("prune")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			cfg, logg, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer logg.Sync()

			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return err
			}

			svc := publish.NewService(afero.NewOsFs(), cfg.Gallery, client, cfg.Storage, logg)
			opts := publish.Options{DryRun: dryRun, Prune: prune}

			plan, executed, err := svc.Publish(cmd.Context(), opts)
			if err != nil {
				logg.Error("Publish failed", zap.Int("executed", executed), zap.Error(err))
				return err
			}

			if jsonOutput || dryRun {
				if err := printJSON(cmd, plan); err != nil {
					return err
				}
			}

			logg.Info("Publish complete",
				zap.String("bucket", plan.Bucket),
				zap.Int("uploads", plan.Summary.Uploads),
				zap.Int("deletes", plan.Summary.Deletes),
				zap.Int("unchanged", plan.Summary.Unchanged),
				zap.Int("executed", executed),
				zap.Bool("dry_run", dryRun),
			)
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "print the plan without changing the bucket")
	cmd.Flags().Bool("prune", false, "delete remote objects that no longer exist locally")
	cmd.Flags().Bool("json", false, "print the plan as JSON")
	return cmd
}
