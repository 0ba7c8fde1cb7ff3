package console

import (
	"path"
	"strings"
)

// defaultMimeType is served for extensions not in the table.
const defaultMimeType = "application/octet-stream"

// mimeTypes maps lower-cased dotted file extensions to response content
// types. Fixed at process start, never mutated.
var mimeTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".js":    "application/javascript; charset=utf-8",
	".mjs":   "application/javascript; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".json":  "application/json; charset=utf-8",
	".map":   "application/json; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".wasm":  "application/wasm",
	".glb":   "model/gltf-binary",
	".gltf":  "model/gltf+json",
	".bin":   "application/octet-stream",
	".mp3":   "audio/mpeg",
	".mp4":   "video/mp4",
}

// contentTypeFor looks up the content type for a request path by its
// extension, case-insensitively.
func contentTypeFor(reqPath string) string {
	ext := strings.ToLower(path.Ext(reqPath))
	if ct, ok := mimeTypes[ext]; ok {
		return ct
	}
	return defaultMimeType
}
