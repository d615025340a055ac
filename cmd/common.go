package cmd

import (
	"encoding/json"
	"fmt"

	"model-portfolio/core/config"
	"model-portfolio/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrap loads the configuration and builds a run-scoped logger.
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	if dir == "" {
		dir = "."
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.WithRunID(logg), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
