package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"model-portfolio/core/config"
	"model-portfolio/core/loader"
	"model-portfolio/core/logger"
	"model-portfolio/core/middleware/auth"
	"model-portfolio/core/middleware/rayid"
	"model-portfolio/core/storage"
	"model-portfolio/feature/catalog"
	"model-portfolio/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "model-portfolio/docs/swagger"
)

// @title Model Portfolio API
// @version 1.0
// @description Read-only API over the published 3D model gallery and its integrity checks.
// @host localhost:8081
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Preview the site with the gallery API",
		Long: `Serves the static site from the site root and mounts the gallery and
integrity API under /api. Stops cleanly on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logg, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer logg.Sync()

			// Bucket checks are optional for a preview; the client connects lazily.
			var store storage.Client
			if client, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Object storage unavailable, bucket checks disabled", zap.Error(err))
			} else {
				store = client
			}

			app, err := newServer(afero.NewOsFs(), cfg, store, logg)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				logg.Info("Starting server",
					zap.String("address", cfg.Server.Address()),
					zap.String("site_root", cfg.Gallery.SiteRoot),
					zap.Bool("protected", cfg.Server.IsProtected()),
				)
				errCh <- app.Listen(cfg.Server.Address())
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-cmd.Context().Done():
				logg.Info("Shutting down server...")
				return app.Shutdown()
			}
		},
	}
}

// newServer wires middleware, the API features and the static site.
func newServer(fs afero.Fs, cfg *config.Config, store storage.Client, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager()
	mgr.Register(catalog.NewFeature(fs, cfg.Gallery, logg, nil))
	mgr.Register(integrity.NewFeature(fs, cfg.Gallery, store, cfg.Storage, logg))

	api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	if err := mgr.LoadAll(api); err != nil {
		return nil, err
	}
	logg.Debug("Features loaded", zap.Strings("features", mgr.Loaded()))

	app.Static("/", cfg.Gallery.SitePath(""), fiber.Static{
		Index: "index.html",
		// Dotfiles (.env, .git) never leave the site root.
		Next: func(c *fiber.Ctx) bool {
			return hiddenPath(c.Path())
		},
	})

	return app, nil
}

// hiddenPath reports whether any segment of the request path starts with a dot.
func hiddenPath(p string) bool {
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}
