// Package loader mounts optional API features on the preview server.
//
// A feature reports its name and whether it is enabled, and registers its routes
// on the router it is given. The serve command registers the catalog and
// integrity features and mounts them under the /api group:
//
//	mgr := loader.NewManager()
//	mgr.Register(catalog.NewFeature(fs, cfg.Gallery, log, nil))
//	if err := mgr.LoadAll(app.Group("/api")); err != nil {
//		return err
//	}
//
// Disabled features are skipped. The first failing feature stops LoadAll.
package loader
