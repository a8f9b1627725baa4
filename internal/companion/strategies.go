package companion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"snapmend/internal/mediatype"
)

const (
	jsonSuffix         = ".json"
	supplementalInfix  = ".supplemental-metadata"
	supplementalSuffix = supplementalInfix + jsonSuffix
)

// query carries the normalized media reference a strategy generates
// candidates for. Listings are read fresh per strategy, never cached, so the
// resolver holds no state between strategies or invocations.
type query struct {
	dir  string
	ext  string
	stem string
}

// listing returns the directory's entry names sorted lexicographically so
// scan strategies resolve deterministically regardless of filesystem order.
// An unreadable directory degrades to an empty listing.
func (q *query) listing() []string {
	entries, err := os.ReadDir(q.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// exists reports whether name refers to a regular file inside the query
// directory.
func (q *query) exists(name string) bool {
	info, err := os.Stat(filepath.Join(q.dir, name))
	return err == nil && info.Mode().IsRegular()
}

// strategy generates candidate sidecar filenames for a query. Candidates are
// ordered by preference; the resolver checks existence and stops at the first
// hit, so the strategies slice doubles as the priority order.
type strategy struct {
	name       string
	candidates func(q *query) []string
}

var strategies = []strategy{
	{"direct", directCandidates},
	{"truncation", truncationCandidates},
	{"supplemental-scan", supplementalScanCandidates},
	{"prefix-scan", prefixScanCandidates},
	{"reverse-truncation", reverseTruncationCandidates},
	{"image-sibling", imageSiblingCandidates},
}

// directCandidates covers the exact-name sidecar forms. When the stem ends in
// a duplicate counter the exporter moves the counter to the very end of the
// sidecar name, so two relocated forms are generated with the extension
// inserted before the counter.
func directCandidates(q *query) []string {
	names := []string{
		q.stem + jsonSuffix,
		q.stem + q.ext + jsonSuffix,
		q.stem + q.ext + supplementalSuffix,
	}
	if base, counter, ok := splitCounter(q.stem); ok {
		names = append(names,
			base+q.ext+counter+jsonSuffix,
			base+q.ext+supplementalInfix+counter+jsonSuffix,
		)
	}
	return names
}

// truncationSuffixes are the stem endings the exporter is known to truncate
// one character further on the sidecar side, checked in priority order.
var truncationSuffixes = []string{"_n-", "_n", "_"}

// truncationCandidates regenerates the direct forms against the stem with its
// final character removed when the stem carries a known truncation artifact.
func truncationCandidates(q *query) []string {
	for _, suffix := range truncationSuffixes {
		if !strings.HasSuffix(q.stem, suffix) {
			continue
		}
		base := q.stem[:len(q.stem)-1]
		return []string{
			base + jsonSuffix,
			base + q.ext + jsonSuffix,
			base + q.ext + supplementalSuffix,
		}
	}
	return nil
}

// supplementalScanCandidates accepts any directory entry that starts with the
// stem and ends with the supplemental-metadata suffix. Sibling media files of
// different types legitimately share one such sidecar.
func supplementalScanCandidates(q *query) []string {
	var names []string
	for _, entry := range q.listing() {
		if strings.HasPrefix(entry, q.stem) && strings.HasSuffix(entry, supplementalSuffix) {
			names = append(names, entry)
		}
	}
	return names
}

// prefixScanCandidates accepts stem-prefixed .json entries whose trailing
// duplicate-counter presence matches the stem's. The parity gate keeps a
// non-counter media file from claiming a counter-suffixed sidecar that
// belongs to a sibling.
func prefixScanCandidates(q *query) []string {
	stemCounter := hasCounter(q.stem)
	var names []string
	for _, entry := range q.listing() {
		if !strings.HasPrefix(entry, q.stem) || !strings.HasSuffix(entry, jsonSuffix) {
			continue
		}
		if hasCounter(strings.TrimSuffix(entry, jsonSuffix)) != stemCounter {
			continue
		}
		names = append(names, entry)
	}
	return names
}

// reverseTruncationCandidates accepts .json entries whose base name is itself
// a prefix of the media stem, recovering sidecars truncated more aggressively
// than the media filename.
func reverseTruncationCandidates(q *query) []string {
	var names []string
	for _, entry := range q.listing() {
		if !strings.HasSuffix(entry, jsonSuffix) {
			continue
		}
		base := strings.TrimSuffix(entry, jsonSuffix)
		if base == "" || !strings.HasPrefix(q.stem, base) {
			continue
		}
		names = append(names, entry)
	}
	return names
}

// imageSiblingCandidates handles videos whose metadata lives with a sibling
// image: the exporter sometimes issues one sidecar per image and expects
// image/video pairs to share it. Only video extensions trigger the fallback.
func imageSiblingCandidates(q *query) []string {
	if !mediatype.IsVideo(q.ext) {
		return nil
	}
	base, counter, hasCtr := splitCounter(q.stem)
	var names []string
	for _, imageExt := range mediatype.ImageFallbackOrder {
		if q.exists(q.stem + imageExt) {
			if hasCtr {
				names = append(names, base+imageExt+supplementalInfix+counter+jsonSuffix)
			}
			names = append(names,
				q.stem+imageExt+jsonSuffix,
				q.stem+imageExt+supplementalSuffix,
			)
		}
		if hasCtr && q.exists(base+imageExt) {
			names = append(names,
				base+imageExt+supplementalSuffix,
				base+imageExt+jsonSuffix,
			)
		}
	}
	return names
}
