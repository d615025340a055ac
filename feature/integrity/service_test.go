package integrity

import (
	"context"
	"io"
	"strings"
	"testing"

	"model-portfolio/core/storage"
	"model-portfolio/core/storage/mocks"
	"model-portfolio/feature/catalog"
	"model-portfolio/feature/integrity/checks"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func testConfig() catalog.Config {
	cfg := catalog.DefaultConfig()
	cfg.SiteRoot = "/site"
	return cfg
}

// publishedSite writes a gallery with one good item, one missing thumbnail and one broken image.
func publishedSite(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/assets/models/chair01/thumbnail.png", []byte(pngHeader), 0644))
	require.NoError(t, afero.WriteFile(fs, "/site/assets/models/lamp/side.jpg", []byte("oops"), 0644))
	require.NoError(t, catalog.Emit(fs, "/site/assets/gallery.json", []catalog.Item{
		{
			ID:        "chair01",
			Thumbnail: "assets/models/chair01/thumbnail.png",
			Images:    []string{"assets/models/chair01/thumbnail.png", "https://cdn.example.com/chair.png"},
		},
		{
			ID:        "lamp",
			Thumbnail: "assets/models/lamp/lamp.jpg",
			Images:    []string{"assets/models/lamp/lamp.jpg", "assets/models/lamp/side.jpg"},
		},
		{ID: "stool"},
	}))
	return fs
}

func TestService_Verify(t *testing.T) {
	fs := publishedSite(t)
	core, logs := observer.New(zap.InfoLevel)
	svc := NewService(fs, testConfig(), nil, storage.Config{}, zap.New(core))

	report, err := svc.Verify(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Items)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Missing)
	assert.False(t, report.OK())
	assert.Equal(t, []checks.Entry{
		{ID: "chair01", Field: "thumbnail", Path: "assets/models/chair01/thumbnail.png", Status: checks.StatusOK},
		{ID: "lamp", Field: "thumbnail", Path: "assets/models/lamp/lamp.jpg", Status: checks.StatusMissing},
	}, report.Entries)

	assert.Equal(t, 1, logs.FilterMessage("OK").Len())
	assert.Equal(t, 1, logs.FilterMessage("MISSING").Len())
}

func TestService_VerifyWithImages(t *testing.T) {
	svc := NewService(publishedSite(t), testConfig(), nil, storage.Config{}, zap.NewNop())

	report, err := svc.Verify(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Checked)
	assert.Equal(t, 2, report.Missing)
	assert.Equal(t, 1, report.NotImage)
	assert.Equal(t, 1, report.External)
}

func TestService_VerifyAllPresent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/assets/models/a/t.png", []byte(pngHeader), 0644))
	require.NoError(t, catalog.Emit(fs, "/site/assets/gallery.json", []catalog.Item{{ID: "a", Thumbnail: "assets/models/a/t.png"}}))

	report, err := NewService(fs, testConfig(), nil, storage.Config{}, zap.NewNop()).Verify(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestService_VerifyUnpublished(t *testing.T) {
	svc := NewService(afero.NewMemMapFs(), testConfig(), nil, storage.Config{}, zap.NewNop())
	_, err := svc.Verify(context.Background(), false)
	assert.Error(t, err)
}

func TestService_CheckBucket(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		svc := NewService(afero.NewMemMapFs(), testConfig(), nil, storage.Config{}, zap.NewNop())
		_, err := svc.CheckBucket(context.Background())
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	t.Run("UsesPrefixedKeys", func(t *testing.T) {
		fs := publishedSite(t)
		local, err := afero.ReadFile(fs, "/site/assets/gallery.json")
		require.NoError(t, err)

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "portfolio").Return(true, nil)
		client.On("ListObjects", mock.Anything, "portfolio", mocks.WithPrefix("site/assets/gallery.json")).Return(mocks.Keys("site/assets/gallery.json"))
		client.On("ListObjects", mock.Anything, "portfolio", mocks.WithPrefix("site/assets/models/")).Return(mocks.Keys("site/assets/models/lamp/side.jpg"))
		client.On("GetObject", mock.Anything, "portfolio", "site/assets/gallery.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(string(local))), nil)

		svc := NewService(fs, testConfig(), client, storage.Config{Bucket: "portfolio", Prefix: "site"}, zap.NewNop())
		report, err := svc.CheckBucket(context.Background())
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
		assert.False(t, report.Stale)
		client.AssertExpectations(t)
	})
}

