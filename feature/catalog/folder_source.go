package catalog

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"model-portfolio/core/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// derivedKeys are metadata keys ignored in folder mode: the folder decides them.
var derivedKeys = []string{"id", "thumbnail", "images"}

// FolderSource reads one item per subfolder of the asset root.
type FolderSource struct {
	fs     afero.Fs
	cfg    Config
	logger *zap.Logger
}

// NewFolderSource creates a folder-metadata source.
func NewFolderSource(fs afero.Fs, cfg Config, logger *zap.Logger) *FolderSource {
	return &FolderSource{fs: fs, cfg: cfg, logger: logger}
}

// Name returns the source mode.
func (s *FolderSource) Name() string {
	return "folder"
}

// Collect scans every immediate subfolder in listing order. Folders without a
// metadata file or with an unparsable one are skipped.
func (s *FolderSource) Collect(ctx context.Context) ([]Record, error) {
	root := s.cfg.AssetDir()
	if err := requireDir(s.fs, root); err != nil {
		return nil, err
	}

	s.logger.Info("Scanning asset root", zap.String("path", root))

	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}

		id := e.Name()
		dir := filepath.Join(root, id)
		scan, err := scanFolder(s.fs, s.cfg, dir, id)
		if err != nil {
			s.logger.Warn("Skipping folder", zap.String("folder", id), zap.Error(err))
			continue
		}
		if scan.MetadataFile == "" {
			s.logger.Info("Skipping folder: no metadata file", zap.String("folder", id))
			continue
		}
		if scan.MetadataErr != nil {
			s.logger.Warn("Skipping folder: unparsable metadata", zap.String("folder", id), zap.Error(scan.MetadataErr))
			continue
		}

		records = append(records, s.record(scan, dir))
	}

	return records, nil
}

func (s *FolderSource) record(scan *folderScan, dir string) Record {
	rec := Record{
		ID:     scan.ID,
		Fields: make(map[string]string),
		Origin: dir,
	}

	for k, v := range scan.Metadata {
		switch {
		case slices.Contains(derivedKeys, k):
		case k == "formats":
			rec.Fields[k] = strings.Join(utils.ToStrings(v), ",")
		case slices.Contains(fieldKeys, k):
			rec.Fields[k] = utils.ToString(v)
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[k] = v
		}
	}

	if isBlank(rec.Fields["title"]) {
		s.logger.Warn("Metadata is missing a title", zap.String("folder", scan.ID), zap.String("file", scan.MetadataFile))
		rec.Fields["title"] = scan.ID
	}

	if scan.Model != "" && isBlank(rec.Fields["modelUrl"]) {
		rec.Fields["modelUrl"] = s.cfg.AssetPath(scan.ID, scan.Model)
	}

	// The thumbnail leads the image strip, the rest keep listing order.
	if scan.Thumbnail != "" {
		rec.Thumbnail = s.cfg.AssetPath(scan.ID, scan.Thumbnail)
		rec.Images = append(rec.Images, rec.Thumbnail)
	}
	for _, img := range scan.Images {
		if img != scan.Thumbnail {
			rec.Images = append(rec.Images, s.cfg.AssetPath(scan.ID, img))
		}
	}

	s.logger.Debug("Loaded folder", zap.String("folder", scan.ID), zap.Int("images", len(rec.Images)))
	return rec
}
