package publish

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"model-portfolio/core/storage"
	"model-portfolio/core/utils"
	"model-portfolio/feature/catalog"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNotGenerated is returned when there is no local gallery to publish.
var ErrNotGenerated = errors.New("gallery has not been generated")

// Service mirrors the local gallery and asset tree to object storage.
type Service struct {
	fs      afero.Fs
	cfg     catalog.Config
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
}

// NewService creates a new publish service.
func NewService(fs afero.Fs, cfg catalog.Config, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		fs:      fs,
		cfg:     cfg,
		client:  client,
		storage: storageCfg,
		logger:  logger,
	}
}

// Plan compares the local site with the bucket. It does NOT execute actions; use Apply for that.
func (s *Service) Plan(ctx context.Context, opts Options) (*Plan, error) {
	galleryRel := path.Clean(filepath.ToSlash(s.cfg.OutputFile))
	galleryInfo, err := s.fs.Stat(s.cfg.OutputPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotGenerated, s.cfg.OutputPath())
	}

	local, err := s.localFiles()
	if err != nil {
		return nil, err
	}
	delete(local, galleryRel)

	remote, err := s.remoteObjects(ctx, galleryRel)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Bucket: s.storage.Bucket, Actions: []Action{}}
	plan.Summary.LocalFiles = len(local) + 1
	plan.Summary.RemoteObjects = len(remote)

	rels := make([]string, 0, len(local))
	for rel := range local {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	for _, rel := range rels {
		if action, ok := s.compare(rel, local[rel], remote); ok {
			plan.Actions = append(plan.Actions, action)
			plan.Summary.Uploads++
		} else {
			plan.Summary.Unchanged++
		}
	}

	if opts.Prune {
		assetPrefix := s.assetPrefix()
		keep := make(map[string]struct{}, len(local))
		for rel := range local {
			keep[s.storage.Key(rel)] = struct{}{}
		}

		var stale []string
		for key := range remote {
			if !strings.HasPrefix(key, assetPrefix) {
				continue
			}
			if _, ok := keep[key]; !ok {
				stale = append(stale, key)
			}
		}
		sort.Strings(stale)

		for _, key := range stale {
			plan.Actions = append(plan.Actions, Action{Type: ActionDelete, Key: key, Reason: "no local file"})
			plan.Summary.Deletes++
		}
	}

	if action, ok := s.compare(galleryRel, galleryInfo.Size(), remote); ok {
		plan.Actions = append(plan.Actions, action)
		plan.Summary.Uploads++
	} else {
		plan.Summary.Unchanged++
	}

	return plan, nil
}

// compare returns the upload needed for rel, if any.
func (s *Service) compare(rel string, size int64, remote map[string]int64) (Action, bool) {
	key := s.storage.Key(rel)
	action := Action{Type: ActionUpload, Key: key, Path: rel, Size: size}

	remoteSize, ok := remote[key]
	switch {
	case !ok:
		action.Reason = "not published"
	case remoteSize != size:
		action.Reason = fmt.Sprintf("size changed: %d -> %d", remoteSize, size)
	default:
		return Action{}, false
	}
	return action, true
}

// Apply executes the actions in plan. Returns the number of actions executed.
func (s *Service) Apply(ctx context.Context, plan *Plan, opts Options) (executed int, err error) {
	if opts.DryRun || len(plan.Actions) == 0 {
		return 0, nil
	}

	if err := s.ensureBucket(ctx); err != nil {
		return 0, err
	}

	var deletes []string
	flush := func() error {
		if len(deletes) == 0 {
			return nil
		}
		if err := s.removeObjects(ctx, deletes); err != nil {
			return err
		}
		executed += len(deletes)
		deletes = nil
		return nil
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDelete:
			deletes = append(deletes, action.Key)
		case ActionUpload:
			if err := flush(); err != nil {
				return executed, err
			}
			if err := s.upload(ctx, action); err != nil {
				return executed, err
			}
			executed++
		}
	}

	if err := flush(); err != nil {
		return executed, err
	}
	return executed, nil
}

// Publish plans and, unless opts.DryRun is set, applies the plan.
func (s *Service) Publish(ctx context.Context, opts Options) (*Plan, int, error) {
	plan, err := s.Plan(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := s.Apply(ctx, plan, opts)
	return plan, executed, err
}

// localFiles returns the size of every file under the asset root keyed by site-relative path.
func (s *Service) localFiles() (map[string]int64, error) {
	files := make(map[string]int64)
	root := s.cfg.AssetDir()

	if _, err := s.fs.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return files, nil
	}

	err := afero.Walk(s.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(s.cfg.SiteRoot, p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = info.Size()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// remoteObjects returns the size of every published asset object and the gallery, keyed by object key.
func (s *Service) remoteObjects(ctx context.Context, galleryRel string) (map[string]int64, error) {
	objects := make(map[string]int64)

	exists, err := s.client.BucketExists(ctx, s.storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return objects, nil
	}

	prefixes := []string{s.assetPrefix(), s.storage.Key(galleryRel)}
	for _, prefix := range prefixes {
		opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
		for obj := range s.client.ListObjects(ctx, s.storage.Bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
			}
			objects[obj.Key] = obj.Size
		}
	}
	return objects, nil
}

func (s *Service) assetPrefix() string {
	return s.storage.Key(path.Clean(filepath.ToSlash(s.cfg.AssetRoot))) + "/"
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.storage.Bucket, minio.MakeBucketOptions{Region: s.storage.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.storage.Bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.storage.Bucket))
	return nil
}

func (s *Service) upload(ctx context.Context, action Action) error {
	f, err := s.fs.Open(s.cfg.SitePath(action.Path))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", action.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", action.Path, err)
	}

	_, err = s.client.PutObject(ctx, s.storage.Bucket, action.Key, f, info.Size(), minio.PutObjectOptions{
		ContentType: utils.ContentType(action.Path),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", action.Key, err)
	}

	s.logger.Info("Uploaded object", zap.String("key", action.Key), zap.String("reason", action.Reason))
	return nil
}

func (s *Service) removeObjects(ctx context.Context, keys []string) error {
	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var errs []error
	for rErr := range s.client.RemoveObjects(ctx, s.storage.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rErr.Err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", rErr.ObjectName, rErr.Err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Info("Deleted objects", zap.Int("count", len(keys)))
	return nil
}
