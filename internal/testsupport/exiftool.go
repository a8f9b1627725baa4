package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// StubExiftool writes an executable shell script standing in for exiftool
// and returns its path. The script body decides the stub's behavior; tests
// typically echo canned JSON or exit nonzero.
func StubExiftool(t testing.TB, script string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "exiftool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write exiftool stub: %v", err)
	}
	return path
}

// StubExiftoolReporting returns a stub that echoes a JSON payload carrying
// the given tag value for every read and records its arguments to argsFile
// on every invocation.
func StubExiftoolReporting(t testing.TB, argsFile, tag, value string) string {
	t.Helper()

	script := `echo "$@" >> ` + argsFile + `
case "$*" in
*-json*) echo '[{"` + tag + `":"` + value + `"}]' ;;
esac`
	return StubExiftool(t, script)
}
