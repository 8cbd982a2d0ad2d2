// Package mediatype resolves asset mimetypes.
//
// ByExtension uses a fixed, build-independent lookup table rather than the
// host OS mime database, so mimetype resolution is identical across
// machines (reproducible builds). Detect sniffs content bytes and is used
// only for manifest reporting, never for inline encoding decisions.
package mediatype

import (
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// byExtension is the fixed extension table. Keys include the leading dot
// and are lowercase.
var byExtension = map[string]string{
	".avif":  "image/avif",
	".bmp":   "image/bmp",
	".css":   "text/css",
	".csv":   "text/csv",
	".eot":   "application/vnd.ms-fontobject",
	".gif":   "image/gif",
	".htm":   "text/html",
	".html":  "text/html",
	".ico":   "image/vnd.microsoft.icon",
	".jpeg":  "image/jpeg",
	".jpg":   "image/jpeg",
	".js":    "text/javascript",
	".json":  "application/json",
	".md":    "text/markdown",
	".mjs":   "text/javascript",
	".mp3":   "audio/mpeg",
	".mp4":   "video/mp4",
	".otf":   "font/otf",
	".pdf":   "application/pdf",
	".png":   "image/png",
	".svg":   "image/svg+xml",
	".ttf":   "font/ttf",
	".txt":   "text/plain",
	".wasm":  "application/wasm",
	".webm":  "video/webm",
	".webp":  "image/webp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".xml":   "text/xml",
}

// ByExtension returns the mimetype for a file extension (with or without
// the leading dot). Returns ("", false) for unknown extensions.
func ByExtension(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	mt, ok := byExtension[strings.ToLower(ext)]
	return mt, ok
}

// ForPath returns the mimetype for a file path based on its extension.
// Returns ("", false) when the path has no recognized extension.
func ForPath(p string) (string, bool) {
	return ByExtension(path.Ext(p))
}

// Detect sniffs the mimetype from content bytes. Always returns a value;
// unrecognized content reports "application/octet-stream".
func Detect(data []byte) string {
	return mimetype.Detect(data).String()
}
