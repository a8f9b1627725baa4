package companion

import (
	"path/filepath"
	"regexp"
	"strings"
)

const editedSuffix = "-edited"

var counterPattern = regexp.MustCompile(`\((\d+)\)$`)

// Stem splits a media path into its directory, extension, and normalized stem.
// The stem is the base name with the extension removed and at most one
// trailing "-edited" marker stripped (case-insensitive): an edited-in-place
// derivative never owns a sidecar of its own and reuses the original's.
func Stem(path string) (dir, ext, stem string) {
	dir = filepath.Dir(path)
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	if strings.HasSuffix(strings.ToLower(stem), editedSuffix) {
		stem = stem[:len(stem)-len(editedSuffix)]
	}
	return dir, ext, stem
}

// splitCounter detaches a trailing duplicate-counter suffix of the form
// "(<digits>)" from a stem. It reports the stem without the counter, the
// counter text including parentheses, and whether a counter was present.
func splitCounter(stem string) (base, counter string, ok bool) {
	match := counterPattern.FindString(stem)
	if match == "" {
		return stem, "", false
	}
	return stem[:len(stem)-len(match)], match, true
}

// hasCounter reports whether the name ends in a "(<digits>)" counter suffix.
func hasCounter(name string) bool {
	return counterPattern.MatchString(name)
}
