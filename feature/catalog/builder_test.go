package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// staticSource returns fixed records.
type staticSource struct {
	records []Record
	err     error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Collect(ctx context.Context) ([]Record, error) {
	return s.records, s.err
}

func TestBuilder_FolderExample(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/assets/models/chair01/info.json", `{"title":"Chair"}`)
	writeFile(t, fs, "/site/assets/models/chair01/thumbnail.png", "png")
	writeFile(t, fs, "/site/assets/models/chair01/side.png", "png")

	cfg := testConfig()
	items, err := NewBuilder(fs, cfg, zap.NewNop()).Build(context.Background(), NewFolderSource(fs, cfg, zap.NewNop()))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, Item{
		ID:        "chair01",
		Title:     "Chair",
		Category:  "Uncategorized",
		Thumbnail: "assets/models/chair01/thumbnail.png",
		Images:    []string{"assets/models/chair01/thumbnail.png", "assets/models/chair01/side.png"},
		Textures:  "4K",
		Formats:   []string{"GLB"},
	}, items[0])
}

func TestBuilder_ImportsAbsoluteThumbnail(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/abs/path/lamp.jpg", "jpeg bytes")

	src := staticSource{records: []Record{{
		ID:        "lamp",
		Fields:    map[string]string{"title": "Lamp"},
		Thumbnail: "/abs/path/lamp.jpg",
	}}}

	items, err := NewBuilder(fs, testConfig(), zap.NewNop()).Build(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "assets/models/lamp/lamp.jpg", items[0].Thumbnail)
	assert.Equal(t, []string{"assets/models/lamp/lamp.jpg"}, items[0].Images)

	data, err := afero.ReadFile(fs, "/site/assets/models/lamp/lamp.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestBuilder_DropsRecordWithoutID(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger, logs := observedLogger()

	src := staticSource{records: []Record{
		{ID: "  ", Fields: map[string]string{"title": "Ghost"}, Thumbnail: "ghost.png", Origin: "row 2"},
	}}

	items, err := NewBuilder(fs, testConfig(), logger).Build(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, logs.FilterMessage("Dropping record without id").Len())

	exists, err := afero.DirExists(fs, "/site/assets/models")
	require.NoError(t, err)
	assert.False(t, exists, "no folder is created for a dropped record")
}

func TestBuilder_DuplicateIDFirstWins(t *testing.T) {
	logger, logs := observedLogger()
	src := staticSource{records: []Record{
		{ID: "lamp", Fields: map[string]string{"title": "First"}},
		{ID: "chair", Fields: map[string]string{"title": "Chair"}},
		{ID: "lamp", Fields: map[string]string{"title": "Second"}},
	}}

	items, err := NewBuilder(afero.NewMemMapFs(), testConfig(), logger).Build(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "chair", items[1].ID)
	assert.Equal(t, 1, logs.FilterMessage("Dropping duplicate id").Len())
}

func TestBuilder_ThumbnailInclusion(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/assets/models/lamp/front.png", "png")
	writeFile(t, fs, "/site/assets/models/lamp/back.png", "png")
	writeFile(t, fs, "/site/assets/models/shared/studio.png", "png")

	tests := []struct {
		name       string
		thumbnail  string
		images     []string
		wantThumb  string
		wantImages []string
	}{
		{
			name:       "PrependedWhenAbsent",
			thumbnail:  "front.png",
			images:     []string{"back.png", "", ""},
			wantThumb:  "assets/models/lamp/front.png",
			wantImages: []string{"assets/models/lamp/front.png", "assets/models/lamp/back.png"},
		},
		{
			name:       "NotDuplicatedWhenListed",
			thumbnail:  "lamp/front.png",
			images:     []string{"back.png", "front.png"},
			wantThumb:  "assets/models/lamp/front.png",
			wantImages: []string{"assets/models/lamp/back.png", "assets/models/lamp/front.png"},
		},
		{
			name:       "RepeatedImagesDeduplicated",
			thumbnail:  "",
			images:     []string{"shared/studio.png", "assets/models/shared/studio.png", "back.png"},
			wantImages: []string{"assets/models/shared/studio.png", "assets/models/lamp/back.png"},
		},
		{
			name:       "UnresolvableDropped",
			thumbnail:  "/missing/thumb.png",
			images:     []string{"/missing/a.png", "https://cdn.example.com/b.png"},
			wantImages: []string{"https://cdn.example.com/b.png"},
		},
		{
			name:       "LenientGuessKept",
			thumbnail:  "later/thumb.png",
			wantThumb:  "assets/models/later/thumb.png",
			wantImages: []string{"assets/models/later/thumb.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := staticSource{records: []Record{{ID: "lamp", Thumbnail: tt.thumbnail, Images: tt.images}}}
			items, err := NewBuilder(fs, testConfig(), zap.NewNop()).Build(context.Background(), src)
			require.NoError(t, err)
			require.Len(t, items, 1)

			assert.Equal(t, tt.wantThumb, items[0].Thumbnail)
			assert.Equal(t, tt.wantImages, items[0].Images)
			if items[0].Thumbnail != "" {
				count := 0
				for _, img := range items[0].Images {
					if img == items[0].Thumbnail {
						count++
					}
				}
				assert.Equal(t, 1, count, "thumbnail appears exactly once in images")
			}
		})
	}
}

func TestBuilder_Defaults(t *testing.T) {
	src := staticSource{records: []Record{{
		ID:     "stool",
		Fields: map[string]string{"title": "  ", "formats": "FBX, OBJ", "textures": "2K"},
		Extra:  map[string]any{"artist": "Ada"},
	}}}

	items, err := NewBuilder(afero.NewMemMapFs(), testConfig(), zap.NewNop()).Build(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Untitled", item.Title)
	assert.Equal(t, "Uncategorized", item.Category)
	assert.Equal(t, "", item.Description)
	assert.Equal(t, "", item.Vertices)
	assert.Equal(t, "", item.PolyCount)
	assert.Equal(t, "", item.MarketplaceLink)
	assert.Equal(t, "2K", item.Textures)
	assert.Equal(t, []string{"FBX", "OBJ"}, item.Formats)
	assert.Equal(t, []string{}, item.Images)
	assert.Equal(t, "Ada", item.Extra["artist"])
}

func TestBuilder_SourceError(t *testing.T) {
	sourceErr := errors.New("boom")
	_, err := NewBuilder(afero.NewMemMapFs(), testConfig(), zap.NewNop()).Build(context.Background(), staticSource{err: sourceErr})
	assert.ErrorIs(t, err, sourceErr)
}

func TestBuilder_DropsUnsafeID(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/abs/x.jpg", "jpeg")
	logger, logs := observedLogger()

	src := staticSource{records: []Record{
		{ID: "../../../evil", Fields: map[string]string{"title": "Evil"}, Thumbnail: "/abs/x.jpg", Origin: "file row 2"},
		{ID: "lamp", Fields: map[string]string{"title": "Lamp"}, Origin: "file row 3"},
	}}

	items, err := NewBuilder(fs, testConfig(), logger).Build(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "lamp", items[0].ID)

	for _, p := range []string{"/evil", "/evil/x.jpg", "/site/evil"} {
		exists, _ := afero.Exists(fs, p)
		assert.False(t, exists, p)
	}
	assert.Equal(t, 1, logs.FilterMessage("Dropping record with unsafe id").Len())
}

func TestBuilder_FolderFailureSkipsOnlyThatItem(t *testing.T) {
	site := t.TempDir()
	fs := afero.NewOsFs()
	cfg := DefaultConfig()
	cfg.SiteRoot = site

	// A stray file where the managed folder of "notes.txt" would go.
	writeFile(t, fs, filepath.Join(site, "assets/models/notes.txt"), "notes")
	logger, logs := observedLogger()

	src := staticSource{records: []Record{
		{ID: "chair", Fields: map[string]string{"title": "Chair"}},
		{ID: "notes.txt", Fields: map[string]string{"title": "Notes"}},
		{ID: "lamp", Fields: map[string]string{"title": "Lamp"}},
	}}

	items, err := NewService(fs, cfg, logger, nil).Generate(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "chair", items[0].ID)
	assert.Equal(t, "lamp", items[1].ID)
	assert.Equal(t, 1, logs.FilterMessage("Skipping item").Len())

	published, err := LoadGallery(fs, cfg.OutputPath())
	require.NoError(t, err)
	assert.Len(t, published, 2)
}
