// Package config provides configuration management for the model-portfolio tools.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live in `default` struct tags next to each setting.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Gallery: asset root, published index location, table file, image extensions, display defaults
//   - Server: preview server port and API key
//   - Database: connection for the database catalog source
//   - Storage: S3/MinIO credentials and bucket the site is published to
//   - Log: logging level and format
//
// Environment variables map to nested keys with underscores, e.g.
// GALLERY_ASSET_ROOT -> gallery.asset_root, GALLERY_IMAGE_EXTENSIONS=".png,.jpg".
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Gallery.OutputFile)
package config
