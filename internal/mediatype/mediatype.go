// Package mediatype classifies media files by extension.
//
// The export format names files inconsistently but the extension reliably
// identifies the broad media kind, so classification is a static table shared
// by the companion resolver (video-to-image sidecar fallback) and the metadata
// collaborators (tag-set selection).
package mediatype

import (
	"path/filepath"
	"strings"
)

// Category identifies the broad media kind of a file.
type Category string

const (
	// Image covers still-photo formats.
	Image Category = "image"
	// Video covers motion-picture formats.
	Video Category = "video"
	// Unknown marks extensions outside the supported tables.
	Unknown Category = "unknown"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".heic": {},
	".heif": {},
	".webp": {},
	".tif":  {},
	".tiff": {},
	".bmp":  {},
	".dng":  {},
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".m4v":  {},
	".avi":  {},
	".mkv":  {},
	".mpg":  {},
	".mpeg": {},
	".wmv":  {},
	".3gp":  {},
	".webm": {},
	".mts":  {},
	".m2ts": {},
}

// ImageFallbackOrder lists image extensions in the order the companion
// resolver probes for a sibling image when a video has no sidecar of its own.
var ImageFallbackOrder = []string{".jpg", ".jpeg", ".heic", ".png", ".gif", ".webp"}

// Detect reports the category for the given path. Extensions are compared
// case-insensitively.
func Detect(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; ok {
		return Image
	}
	if _, ok := videoExtensions[ext]; ok {
		return Video
	}
	return Unknown
}

// IsImage reports whether the path has a recognized still-image extension.
func IsImage(path string) bool {
	return Detect(path) == Image
}

// IsVideo reports whether the path has a recognized video extension.
func IsVideo(path string) bool {
	return Detect(path) == Video
}

// Supported reports whether the file can carry embedded capture metadata at
// all. Unsupported files are skipped by the metadata writer and verifier.
func Supported(path string) bool {
	return Detect(path) != Unknown
}
