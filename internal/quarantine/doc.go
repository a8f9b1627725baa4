// Package quarantine relocates media files whose metadata rewrite failed
// into an error directory and records each relocation in a SQLite ledger.
//
// Files are copied, never moved, preserving their original filenames; a
// colliding name lands in a per-batch subdirectory instead. The ledger plus a
// file lock on the quarantine root let independent processes quarantine
// concurrently without corrupting either.
package quarantine
