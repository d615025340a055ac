package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// folderScan is what a single item folder contains.
type folderScan struct {
	ID string
	// MetadataFile is the metadata file name found, or "".
	MetadataFile string
	Metadata     map[string]any
	// MetadataErr is set when the metadata file exists but cannot be decoded.
	MetadataErr error
	// Images are image file names in listing order.
	Images []string
	// Thumbnail is the chosen thumbnail file name, or "".
	Thumbnail string
	// Model is the first 3D model file name, or "".
	Model string
}

// scanFolder inspects dir, the folder of item id.
func scanFolder(fs afero.Fs, cfg Config, dir, id string) (*folderScan, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	scan := &folderScan{ID: id}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case cfg.IsImage(name):
			scan.Images = append(scan.Images, name)
		case cfg.IsModel(name) && scan.Model == "":
			scan.Model = name
		}
	}

	for _, img := range scan.Images {
		if strings.HasPrefix(strings.ToLower(img), "thumbnail.") {
			scan.Thumbnail = img
			break
		}
	}
	if scan.Thumbnail == "" && len(scan.Images) > 0 {
		scan.Thumbnail = scan.Images[0]
	}

	for _, name := range cfg.MetadataFiles {
		p := filepath.Join(dir, name)
		exists, err := afero.Exists(fs, p)
		if err != nil || !exists {
			continue
		}
		scan.MetadataFile = name
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			scan.MetadataErr = fmt.Errorf("failed to read %s: %w", p, err)
			break
		}
		scan.Metadata, scan.MetadataErr = decodeMetadata(name, data)
		break
	}

	return scan, nil
}

// decodeMetadata decodes a metadata file by its extension. The document must be an object.
func decodeMetadata(name string, data []byte) (map[string]any, error) {
	var doc any
	var err error

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		doc = m
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	m, ok := doc.(map[string]any)
	if !ok || m == nil {
		return nil, fmt.Errorf("failed to parse %s: top level is not an object", name)
	}
	return m, nil
}
