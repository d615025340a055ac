package integrity

import (
	"context"
	"errors"
	"fmt"
	"path"

	"model-portfolio/core/storage"
	"model-portfolio/feature/catalog"
	"model-portfolio/feature/integrity/checks"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by bucket checks when no object storage client is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

// Report is the result of verifying the published gallery.
type Report struct {
	Items    int            `json:"items"`
	Checked  int            `json:"checked"`
	Missing  int            `json:"missing"`
	NotImage int            `json:"notImage"`
	External int            `json:"external"`
	Entries  []checks.Entry `json:"entries"`
}

// OK reports whether every local reference exists and is an image.
func (r *Report) OK() bool {
	return r.Missing == 0 && r.NotImage == 0
}

// Service handles integrity checks.
type Service struct {
	fs      afero.Fs
	cfg     catalog.Config
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
}

// NewService creates a new integrity service. client may be nil; bucket checks then fail with ErrStorageDisabled.
func NewService(fs afero.Fs, cfg catalog.Config, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		fs:      fs,
		cfg:     cfg,
		client:  client,
		storage: storageCfg,
		logger:  logger,
	}
}

// Verify checks every thumbnail of the published gallery, and every image when withImages is set.
func (s *Service) Verify(ctx context.Context, withImages bool) (*Report, error) {
	items, err := catalog.LoadGallery(s.fs, s.cfg.OutputPath())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Checking gallery", zap.Int("items", len(items)), zap.Bool("images", withImages))

	report := &Report{Items: len(items), Entries: []checks.Entry{}}
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if item.Thumbnail != "" {
			s.record(report, item.ID, "thumbnail", item.Thumbnail)
		}
		if withImages {
			for i, img := range item.Images {
				s.record(report, item.ID, fmt.Sprintf("images[%d]", i), img)
			}
		}
	}

	s.logger.Info("Gallery check completed",
		zap.Int("checked", report.Checked),
		zap.Int("missing", report.Missing),
		zap.Int("not_image", report.NotImage))

	return report, nil
}

func (s *Service) record(report *Report, id, field, ref string) {
	status := checks.CheckFile(s.fs, s.cfg.SiteRoot, ref, s.cfg.IsImage)
	report.Entries = append(report.Entries, checks.Entry{ID: id, Field: field, Path: ref, Status: status})
	report.Checked++

	l := s.logger.With(zap.String("id", id), zap.String("field", field), zap.String("path", ref))
	switch status {
	case checks.StatusOK:
		l.Info("OK")
	case checks.StatusMissing:
		report.Missing++
		l.Warn("MISSING")
	case checks.StatusNotImage:
		report.NotImage++
		l.Warn("NOT_IMAGE")
	case checks.StatusExternal:
		report.External++
		l.Debug("EXTERNAL")
	}
}

// CheckBucket verifies the published copy of the site in object storage.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	local, err := afero.ReadFile(s.fs, s.cfg.OutputPath())
	if err != nil {
		s.logger.Debug("No local gallery to compare", zap.Error(err))
		local = nil
	}

	return checks.CheckBucket(ctx, s.client, s.storage.Bucket,
		s.storage.Key(path.Clean(s.cfg.OutputFile)),
		s.storage.Key(path.Clean(s.cfg.AssetRoot)),
		local)
}
