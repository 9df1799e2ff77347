package zip

import (
	"mime"
	"strings"
)

// DefaultExtension is used when a content type maps to no known extension.
const DefaultExtension = ".bin"

// preferredExtensions pins the extension for media types where the system
// MIME table lists several candidates.
var preferredExtensions = map[string]string{
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"image/gif":        ".gif",
	"image/webp":       ".webp",
	"image/svg+xml":    ".svg",
	"image/x-icon":     ".ico",
	"application/json": ".json",
	"application/xml":  ".xml",
	"text/xml":         ".xml",
	"text/plain":       ".txt",
	"application/pdf":  ".pdf",
	"video/mp4":        ".mp4",
	"video/webm":       ".webm",
	"audio/mpeg":       ".mp3",
	"font/woff":        ".woff",
	"font/woff2":       ".woff2",
}

// Extension maps a Content-Type header value to a file extension including
// the leading dot.
func Extension(contentType string) string {
	lower := strings.ToLower(contentType)
	switch {
	case strings.Contains(lower, "javascript"):
		return ".js"
	case strings.Contains(lower, "css"):
		return ".css"
	case strings.Contains(lower, "html"):
		return ".html"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return DefaultExtension
	}
	if ext, ok := preferredExtensions[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return DefaultExtension
}
