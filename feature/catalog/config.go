package catalog

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Config holds the index pipeline settings shared by every source mode.
type Config struct {
	// SiteRoot is the filesystem directory the published site is served from.
	SiteRoot string `mapstructure:"site_root" default:"."`
	// AssetRoot is the site-relative directory holding one folder per item.
	AssetRoot string `mapstructure:"asset_root" default:"assets/models"`
	// OutputFile is the site-relative location of the published index.
	OutputFile string `mapstructure:"output_file" default:"assets/gallery.json"`
	// TableFile is the product list read in table mode, relative to SiteRoot.
	TableFile string `mapstructure:"table_file" default:"products_data.csv"`
	// Table is the database table read in db mode.
	Table           string   `mapstructure:"table" default:"products"`
	MetadataFiles   []string `mapstructure:"metadata_files" default:"info.json,info.yaml,info.yml,info.toml"`
	ImageExtensions []string `mapstructure:"image_extensions" default:".jpg,.jpeg,.png,.webp"`
	ModelExtensions []string `mapstructure:"model_extensions" default:".glb,.gltf"`
	DefaultTitle    string   `mapstructure:"default_title" default:"Untitled"`
	DefaultCategory string   `mapstructure:"default_category" default:"Uncategorized"`
	// TextureResolution and Formats are fixed display descriptors applied to every item.
	TextureResolution string   `mapstructure:"texture_resolution" default:"4K"`
	Formats           []string `mapstructure:"formats" default:"GLB"`
	// ImageColumns is the number of imageN columns in the tabular layout.
	ImageColumns int `mapstructure:"image_columns" default:"5"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		SiteRoot:          ".",
		AssetRoot:         "assets/models",
		OutputFile:        "assets/gallery.json",
		TableFile:         "products_data.csv",
		Table:             "products",
		MetadataFiles:     []string{"info.json", "info.yaml", "info.yml", "info.toml"},
		ImageExtensions:   []string{".jpg", ".jpeg", ".png", ".webp"},
		ModelExtensions:   []string{".glb", ".gltf"},
		DefaultTitle:      "Untitled",
		DefaultCategory:   "Uncategorized",
		TextureResolution: "4K",
		Formats:           []string{"GLB"},
		ImageColumns:      5,
	}
}

// SitePath converts a site-relative path into a filesystem path.
func (c Config) SitePath(rel string) string {
	return filepath.Join(c.SiteRoot, filepath.FromSlash(rel))
}

// AssetDir is the filesystem directory of the asset root.
func (c Config) AssetDir() string {
	return c.SitePath(c.AssetRoot)
}

// ItemDir is the filesystem directory managed for item id.
func (c Config) ItemDir(id string) string {
	return filepath.Join(c.AssetDir(), id)
}

// OutputPath is the filesystem location of the published index.
func (c Config) OutputPath() string {
	return c.SitePath(c.OutputFile)
}

// TablePath is the filesystem location of the configured table file.
func (c Config) TablePath() string {
	if filepath.IsAbs(c.TableFile) {
		return c.TableFile
	}
	return c.SitePath(c.TableFile)
}

// AssetPath builds the site-relative path of file name inside item id.
func (c Config) AssetPath(id, name string) string {
	return path.Join(strings.Trim(filepath.ToSlash(c.AssetRoot), "/"), id, name)
}

// IsImage reports whether name carries a recognised image extension.
func (c Config) IsImage(name string) bool {
	return hasExtension(name, c.ImageExtensions)
}

// IsModel reports whether name carries a recognised 3D model extension.
func (c Config) IsModel(name string) bool {
	return hasExtension(name, c.ModelExtensions)
}

// ImageColumnNames returns image1..imageN.
func (c Config) ImageColumnNames() []string {
	names := make([]string, 0, c.ImageColumns)
	for i := 1; i <= c.ImageColumns; i++ {
		names = append(names, fmt.Sprintf("image%d", i))
	}
	return names
}

// Columns returns the tabular header row.
func (c Config) Columns() []string {
	cols := []string{"id", "title", "description", "category", "vertices", "polyCount", "marketplaceLink", "thumbnail"}
	return append(cols, c.ImageColumnNames()...)
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}
