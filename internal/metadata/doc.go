// Package metadata applies and verifies embedded capture timestamps.
//
// The Writer rewrites a media file's capture-time tags from a resolved
// companion timestamp; the Verifier compares the embedded value against that
// timestamp so unchanged files are skipped. Both collaborators deal in UTC
// instants and render explicit offsets as +00:00. Files whose extension
// supports no embedded metadata are silently left alone, and a failed
// metadata read is treated as a match so ambiguity never triggers a
// destructive rewrite.
package metadata
