package utils

import (
	"mime"
	"path"
	"strings"
)

// contentTypes covers the site's asset types, including 3D model formats that
// the system MIME database usually lacks.
var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".glb":  "model/gltf-binary",
	".gltf": "model/gltf+json",
	".ico":  "image/x-icon",
}

// ContentType returns the MIME type for name, falling back to application/octet-stream.
func ContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
