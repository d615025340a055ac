package catalog

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFolderSource_Collect(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/assets/models/chair01/info.json", `{"title":"Chair"}`)
	writeFile(t, fs, "/site/assets/models/chair01/thumbnail.png", "png")
	writeFile(t, fs, "/site/assets/models/chair01/side.png", "png")
	writeFile(t, fs, "/site/assets/models/chair01/chair.glb", "glb")
	writeFile(t, fs, "/site/assets/models/empty/readme.txt", "no metadata")
	writeFile(t, fs, "/site/assets/models/lamp/info.yaml", "title: Lamp\nvertices: 12000\nartist: Ada\n")
	writeFile(t, fs, "/site/assets/models/lamp/b.JPG", "jpg")
	writeFile(t, fs, "/site/assets/models/lamp/a.webp", "webp")
	writeFile(t, fs, "/site/assets/models/sofa/info.toml", "category = \"Furniture\"\nformats = [\"GLB\", \"FBX\"]\n")
	writeFile(t, fs, "/site/assets/models/broken/info.json", `{"title":`)
	writeFile(t, fs, "/site/assets/models/stray.png", "not a folder")

	logger, logs := observedLogger()
	records, err := NewFolderSource(fs, testConfig(), logger).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	chair := records[0]
	assert.Equal(t, "chair01", chair.ID)
	assert.Equal(t, "Chair", chair.Field("title"))
	assert.Equal(t, "assets/models/chair01/thumbnail.png", chair.Thumbnail)
	assert.Equal(t, []string{
		"assets/models/chair01/thumbnail.png",
		"assets/models/chair01/side.png",
	}, chair.Images)
	assert.Equal(t, "assets/models/chair01/chair.glb", chair.Field("modelUrl"))

	lamp := records[1]
	assert.Equal(t, "lamp", lamp.ID)
	assert.Equal(t, "12000", lamp.Field("vertices"))
	assert.Equal(t, "assets/models/lamp/a.webp", lamp.Thumbnail, "first image wins without a thumbnail.* file")
	assert.Equal(t, []string{"assets/models/lamp/a.webp", "assets/models/lamp/b.JPG"}, lamp.Images)
	assert.Equal(t, map[string]any{"artist": "Ada"}, lamp.Extra)

	sofa := records[2]
	assert.Equal(t, "sofa", sofa.Field("title"), "missing title falls back to the folder name")
	assert.Equal(t, "Furniture", sofa.Field("category"))
	assert.Equal(t, "GLB,FBX", sofa.Field("formats"))
	assert.Empty(t, sofa.Thumbnail)
	assert.Empty(t, sofa.Images)

	assert.Equal(t, 1, logs.FilterMessage("Skipping folder: no metadata file").Len())
	assert.Equal(t, 1, logs.FilterMessage("Skipping folder: unparsable metadata").Len())
	assert.Equal(t, 1, logs.FilterMessage("Metadata is missing a title").Len())
}

func TestFolderSource_DerivedKeysIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/assets/models/desk/info.json",
		`{"id":"other","title":"Desk","thumbnail":"x.png","images":["y.png"],"modelUrl":"https://cdn.example.com/desk.glb"}`)
	writeFile(t, fs, "/site/assets/models/desk/desk.gltf", "{}")

	records, err := NewFolderSource(fs, testConfig(), zap.NewNop()).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "desk", records[0].ID)
	assert.Empty(t, records[0].Thumbnail)
	assert.Empty(t, records[0].Images)
	assert.Nil(t, records[0].Extra)
	assert.Equal(t, "https://cdn.example.com/desk.glb", records[0].Field("modelUrl"))
}

func TestFolderSource_MissingRoot(t *testing.T) {
	_, err := NewFolderSource(afero.NewMemMapFs(), testConfig(), zap.NewNop()).Collect(context.Background())
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    string
		want    map[string]any
		wantErr bool
	}{
		{name: "JSON", file: "info.json", data: `{"title":"A"}`, want: map[string]any{"title": "A"}},
		{name: "YAML", file: "info.yml", data: "title: A\n", want: map[string]any{"title": "A"}},
		{name: "TOML", file: "info.toml", data: "title = \"A\"\n", want: map[string]any{"title": "A"}},
		{name: "JSONArray", file: "info.json", data: `["A"]`, wantErr: true},
		{name: "YAMLScalar", file: "info.yaml", data: "just text", wantErr: true},
		{name: "JSONNull", file: "info.json", data: `null`, wantErr: true},
		{name: "Invalid", file: "info.json", data: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeMetadata(tt.file, []byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
