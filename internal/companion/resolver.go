package companion

import "path/filepath"

// Match describes a resolved sidecar: the path that existed at resolution
// time and the name of the strategy that produced it.
type Match struct {
	Path     string
	Strategy string
}

// Lookup resolves the sidecar for mediaPath and reports which strategy
// matched. The media file itself need not exist; only the returned sidecar
// path is guaranteed to exist at return time. A false report means no
// strategy produced an existing candidate, which is an expected outcome for
// files the exporter shipped without provenance data.
func Lookup(mediaPath string) (Match, bool) {
	dir, ext, stem := Stem(mediaPath)
	q := &query{dir: dir, ext: ext, stem: stem}
	for _, s := range strategies {
		for _, name := range s.candidates(q) {
			if q.exists(name) {
				return Match{Path: filepath.Join(dir, name), Strategy: s.name}, true
			}
		}
	}
	return Match{}, false
}

// Resolve returns the sidecar path for mediaPath, or ok=false when none of
// the candidate strategies finds an existing file.
func Resolve(mediaPath string) (string, bool) {
	match, ok := Lookup(mediaPath)
	if !ok {
		return "", false
	}
	return match.Path, true
}
