package catalog

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"model-portfolio/core/tabular"
	"model-portfolio/core/utils"

	"github.com/parquet-go/parquet-go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// migrateFields are the metadata keys copied into the product list.
var migrateFields = []string{"id", "title", "description", "category", "vertices", "polyCount", "marketplaceLink"}

// Migrate converts the folder tree into a product list at out (.csv or .parquet).
// Image paths are written relative to the asset root as <folder>/<file>.
// It returns the number of rows written.
func (s *Service) Migrate(ctx context.Context, out string) (int, error) {
	root := s.cfg.AssetDir()
	if err := requireDir(s.fs, root); err != nil {
		return 0, err
	}
	if out == "" {
		out = s.cfg.TablePath()
	}

	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return 0, err
	}

	var rows []ProductRow
	var images [][]string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !e.IsDir() {
			continue
		}

		folder := e.Name()
		scan, err := scanFolder(s.fs, s.cfg, filepath.Join(root, folder), folder)
		if err != nil {
			s.logger.Warn("Skipping folder", zap.String("folder", folder), zap.Error(err))
			continue
		}
		if scan.MetadataErr != nil {
			s.logger.Warn("Failed to parse metadata, using defaults", zap.String("folder", folder), zap.Error(scan.MetadataErr))
		}

		row, imgs := s.migrateRow(scan)
		rows = append(rows, row)
		images = append(images, imgs)
		s.logger.Info("Migrated folder", zap.String("folder", folder))
	}

	var buf bytes.Buffer
	if strings.EqualFold(filepath.Ext(out), ".parquet") {
		if err := parquet.Write(&buf, rows); err != nil {
			return 0, fmt.Errorf("failed to encode parquet: %w", err)
		}
	} else {
		table := make([][]string, len(rows))
		for i, row := range rows {
			table[i] = row.Row(0)
			for c := 0; c < s.cfg.ImageColumns; c++ {
				v := ""
				if c < len(images[i]) {
					v = images[i][c]
				}
				table[i] = append(table[i], v)
			}
		}
		if err := tabular.Write(&buf, s.cfg.Columns(), table); err != nil {
			return 0, fmt.Errorf("failed to encode table: %w", err)
		}
	}

	if err := s.fs.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", filepath.Dir(out), err)
	}
	if err := afero.WriteFile(s.fs, out, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", out, err)
	}

	s.logger.Info("Wrote product table", zap.String("path", out), zap.Int("rows", len(rows)))
	return len(rows), nil
}

// migrateRow returns the product row of a folder and its image column values.
func (s *Service) migrateRow(scan *folderScan) (ProductRow, []string) {
	values := map[string]string{
		"id":       scan.ID,
		"title":    scan.ID,
		"category": s.cfg.DefaultCategory,
	}
	for _, k := range migrateFields {
		if v, ok := scan.Metadata[k]; ok {
			values[k] = utils.ToString(v)
		}
	}
	if isBlank(values["id"]) {
		values["id"] = scan.ID
	}

	row := ProductRow{
		ID:              values["id"],
		Title:           values["title"],
		Description:     values["description"],
		Category:        values["category"],
		Vertices:        values["vertices"],
		PolyCount:       values["polyCount"],
		MarketplaceLink: values["marketplaceLink"],
	}

	var imgs []string
	for _, img := range scan.Images {
		rel := path.Join(scan.ID, img)
		if img == scan.Thumbnail {
			row.Thumbnail = rel
			continue
		}
		imgs = append(imgs, rel)
	}

	limit := min(s.cfg.ImageColumns, productImageColumns)
	if len(imgs) > s.cfg.ImageColumns {
		s.logger.Warn("Too many images for the image columns, extra images dropped",
			zap.String("folder", scan.ID),
			zap.Int("images", len(imgs)),
			zap.Int("columns", s.cfg.ImageColumns))
		imgs = imgs[:s.cfg.ImageColumns]
	}
	row.SetImages(imgs[:min(limit, len(imgs))])

	return row, imgs
}
