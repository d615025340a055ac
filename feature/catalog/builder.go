package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"model-portfolio/core/pathresolve"
	"model-portfolio/core/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Builder turns source records into the canonical item list.
type Builder struct {
	fs       afero.Fs
	cfg      Config
	resolver *pathresolve.Resolver
	logger   *zap.Logger
}

// NewBuilder creates a builder resolving references under cfg's site and asset roots.
func NewBuilder(fs afero.Fs, cfg Config, logger *zap.Logger) *Builder {
	return &Builder{
		fs:       fs,
		cfg:      cfg,
		resolver: pathresolve.New(fs, cfg.SiteRoot, cfg.AssetRoot),
		logger:   logger,
	}
}

// Build collects src and assembles items one at a time in source order.
// Only a source-level failure is returned; per-item problems are logged.
func (b *Builder) Build(ctx context.Context, src Source) ([]Item, error) {
	records, err := src.Collect(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(records))
	seen := make(map[string]string, len(records))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := strings.TrimSpace(rec.ID)
		if id == "" {
			b.logger.Warn("Dropping record without id", zap.String("origin", rec.Origin))
			continue
		}
		if !pathresolve.SafeID(id) {
			b.logger.Warn("Dropping record with unsafe id", zap.String("id", id), zap.String("origin", rec.Origin))
			continue
		}
		if first, ok := seen[id]; ok {
			b.logger.Warn("Dropping duplicate id",
				zap.String("id", id),
				zap.String("origin", rec.Origin),
				zap.String("first", first))
			continue
		}
		seen[id] = rec.Origin
		rec.ID = id

		item, err := b.buildItem(rec)
		if err != nil {
			b.logger.Warn("Skipping item", zap.String("id", id), zap.String("origin", rec.Origin), zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	b.logger.Info("Built gallery", zap.String("source", src.Name()), zap.Int("items", len(items)))
	return items, nil
}

func (b *Builder) buildItem(rec Record) (Item, error) {
	l := b.logger.With(zap.String("id", rec.ID))

	// The managed folder receives imported files.
	if err := b.fs.MkdirAll(b.cfg.ItemDir(rec.ID), 0755); err != nil {
		return Item{}, fmt.Errorf("failed to create folder for %s: %w", rec.ID, err)
	}

	thumbnail := b.resolve(l, rec.Thumbnail, rec.ID, "thumbnail")

	images := []string{}
	for i, raw := range rec.Images {
		p := b.resolve(l, raw, rec.ID, fmt.Sprintf("image%d", i+1))
		if p == "" || slices.Contains(images, p) {
			continue
		}
		images = append(images, p)
	}

	if thumbnail != "" && !slices.Contains(images, thumbnail) {
		images = slices.Insert(images, 0, thumbnail)
	}

	formats := utils.ToStrings(rec.Field("formats"))
	if len(formats) == 0 {
		formats = slices.Clone(b.cfg.Formats)
	}

	return Item{
		ID:              rec.ID,
		Title:           orDefault(rec.Field("title"), b.cfg.DefaultTitle),
		Category:        orDefault(rec.Field("category"), b.cfg.DefaultCategory),
		Description:     rec.Field("description"),
		Vertices:        rec.Field("vertices"),
		PolyCount:       rec.Field("polyCount"),
		MarketplaceLink: rec.Field("marketplaceLink"),
		Thumbnail:       thumbnail,
		Images:          images,
		ModelURL:        rec.Field("modelUrl"),
		Textures:        orDefault(rec.Field("textures"), b.cfg.TextureResolution),
		Formats:         formats,
		Extra:           rec.Extra,
	}, nil
}

// resolve maps one raw reference to a site-relative path, or "" when it is blank or unresolvable.
func (b *Builder) resolve(l *zap.Logger, raw, id, field string) string {
	if isBlank(raw) {
		return ""
	}

	res, copied, err := b.resolver.Resolve(raw, id)
	if err != nil {
		if errors.Is(err, pathresolve.ErrUnresolvable) {
			l.Warn("Unresolvable reference", zap.String("field", field), zap.String("ref", raw), zap.Error(err))
		} else {
			l.Warn("Failed to import reference", zap.String("field", field), zap.String("ref", raw), zap.Error(err))
		}
		return ""
	}

	switch {
	case copied:
		l.Info("Imported file", zap.String("field", field), zap.String("from", res.Source), zap.String("to", res.Path))
	case res.Kind == pathresolve.KindGuess:
		l.Debug("Reference not on disk yet", zap.String("field", field), zap.String("path", res.Path))
	}
	return res.Path
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
