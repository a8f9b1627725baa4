// Package companion locates the JSON sidecar describing an exported media
// file.
//
// The exporter names sidecars inconsistently relative to the media they
// describe: the extension may appear before or after the media name, a
// "supplemental-metadata" infix may or may not be present, duplicate-counter
// suffixes like "(1)" are relocated to the end of the sidecar name, and long
// names are truncated at different lengths on each side of the pair.
// Resolution therefore runs an ordered chain of candidate strategies, from the
// cheap exact-name forms through directory scans to a video-to-image sibling
// fallback, stopping at the first candidate that exists on disk.
//
// A missing companion is an expected outcome, not an error; the resolver
// absorbs every failure mode internally and only ever reports a path or
// nothing.
package companion
