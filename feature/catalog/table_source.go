package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"model-portfolio/core/tabular"

	"github.com/parquet-go/parquet-go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var imageColumnPattern = regexp.MustCompile(`^image\d+$`)

// TableSource reads the product list, either delimited text or parquet.
type TableSource struct {
	fs     afero.Fs
	cfg    Config
	path   string
	logger *zap.Logger
}

// NewTableSource creates a table source reading path. An empty path uses cfg.TablePath().
func NewTableSource(fs afero.Fs, cfg Config, path string, logger *zap.Logger) *TableSource {
	if path == "" {
		path = cfg.TablePath()
	}
	return &TableSource{fs: fs, cfg: cfg, path: path, logger: logger}
}

// Name returns the source mode.
func (s *TableSource) Name() string {
	return "table"
}

// Collect reads every row in file order.
func (s *TableSource) Collect(ctx context.Context) ([]Record, error) {
	if err := requireFile(s.fs, s.path); err != nil {
		return nil, err
	}

	s.logger.Info("Reading product table", zap.String("path", s.path))

	if strings.EqualFold(filepath.Ext(s.path), ".parquet") {
		return s.collectParquet(ctx)
	}
	return s.collectText(ctx)
}

func (s *TableSource) collectText(ctx context.Context) ([]Record, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := tabular.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	known := slices.Concat([]string{"id", "thumbnail"}, fieldKeys)
	imageCols := s.cfg.ImageColumnNames()

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec := Record{
			ID:        strings.TrimSpace(row["id"]),
			Fields:    make(map[string]string),
			Thumbnail: row["thumbnail"],
			// Header is line 1.
			Origin: fmt.Sprintf("%s row %d", filepath.Base(s.path), i+2),
		}
		for _, k := range fieldKeys {
			if v, ok := row[k]; ok {
				rec.Fields[k] = v
			}
		}
		for _, col := range imageCols {
			rec.Images = append(rec.Images, row[col])
		}
		for k, v := range row {
			if v == "" || slices.Contains(known, k) || imageColumnPattern.MatchString(k) {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[k] = v
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *TableSource) collectParquet(ctx context.Context) ([]Record, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet %s: %w", s.path, err)
	}

	reader := parquet.NewGenericReader[ProductRow](pf)
	defer reader.Close()

	var records []Record
	batch := make([]ProductRow, 64)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := reader.Read(batch)
		for _, row := range batch[:n] {
			origin := fmt.Sprintf("%s row %d", filepath.Base(s.path), len(records)+1)
			records = append(records, row.Record(origin))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet %s: %w", s.path, err)
		}
	}

	s.logger.Debug("Read parquet table", zap.Int64("rows", pf.NumRows()))
	return records, nil
}
