package cmd

import (
	"fmt"

	"model-portfolio/core/storage"
	"model-portfolio/feature/integrity"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the published gallery points at real image files",
		Long: `Reads the published gallery and checks every thumbnail against the site root.
With --images every gallery image is checked too, and with --bucket the object
storage copy of the site is compared as well. Fails when a file is missing or is
not an image.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			withImages, _ := cmd.Flags().GetBool("images")
			withBucket, _ := cmd.Flags().GetBool("bucket")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			cfg, logg, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer logg.Sync()

			var client storage.Client
			if withBucket {
				client, err = storage.NewClient(cfg.Storage)
				if err != nil {
					return err
				}
			}

			svc := integrity.NewService(afero.NewOsFs(), cfg.Gallery, client, cfg.Storage, logg)
			report, err := svc.Verify(cmd.Context(), withImages)
			if err != nil {
				logg.Error("Failed to read gallery", zap.Error(err))
				return err
			}

			if jsonOutput {
				if err := printJSON(cmd, report); err != nil {
					return err
				}
			}

			if withBucket {
				bucket, err := svc.CheckBucket(cmd.Context())
				if err != nil {
					return err
				}
				if len(bucket.Missing) > 0 || bucket.Stale {
					logg.Warn("Bucket out of date, run publish",
						zap.Strings("missing", bucket.Missing),
						zap.Bool("stale", bucket.Stale),
					)
					return fmt.Errorf("bucket %s is out of date", bucket.Bucket)
				}
			}

			if !report.OK() {
				return fmt.Errorf("%d missing and %d non-image references", report.Missing, report.NotImage)
			}
			return nil
		},
	}

	cmd.Flags().Bool("images", false, "check every gallery image, not only thumbnails")
	cmd.Flags().Bool("bucket", false, "also check the published copy in object storage")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	return cmd
}
