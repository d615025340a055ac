package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when the published gallery has no item with the requested id.
var ErrItemNotFound = errors.New("item not found")

// Source modes accepted by Service.Source.
const (
	ModeFolder = "folder"
	ModeTable  = "table"
	ModeDB     = "db"
)

// Service runs the index pipeline and serves the published gallery.
type Service struct {
	fs     afero.Fs
	cfg    Config
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a catalog service. db may be nil when the database mode is not used.
func NewService(fs afero.Fs, cfg Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{fs: fs, cfg: cfg, logger: logger, db: db}
}

// Config returns the pipeline configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Source returns the source for mode. tablePath overrides the configured table file in table mode.
func (s *Service) Source(mode, tablePath string) (Source, error) {
	switch mode {
	case ModeFolder:
		return NewFolderSource(s.fs, s.cfg, s.logger), nil
	case ModeTable:
		return NewTableSource(s.fs, s.cfg, tablePath, s.logger), nil
	case ModeDB:
		return NewDatabaseSource(s.db, s.cfg.Table, s.logger), nil
	default:
		return nil, fmt.Errorf("unknown source mode %q", mode)
	}
}

// Generate builds the gallery from src and publishes it. Nothing is written when the build fails.
func (s *Service) Generate(ctx context.Context, src Source) ([]Item, error) {
	items, err := NewBuilder(s.fs, s.cfg, s.logger).Build(ctx, src)
	if err != nil {
		return nil, err
	}

	out := s.cfg.OutputPath()
	if err := Emit(s.fs, out, items); err != nil {
		return nil, err
	}

	s.logger.Info("Generated gallery", zap.String("path", out), zap.Int("items", len(items)))
	return items, nil
}

// Gallery returns the published items; an unpublished gallery is empty.
func (s *Service) Gallery() ([]Item, error) {
	items, err := LoadGallery(s.fs, s.cfg.OutputPath())
	if errors.Is(err, fs.ErrNotExist) {
		return []Item{}, nil
	}
	return items, err
}

// Item returns the published item with id.
func (s *Service) Item(id string) (*Item, error) {
	items, err := s.Gallery()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}
