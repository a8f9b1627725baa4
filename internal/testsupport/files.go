package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

// WriteFile creates path with the given contents, creating parent
// directories as needed.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteSidecar writes a minimal exporter sidecar document recording taken as
// the photo-taken time.
func WriteSidecar(t testing.TB, path string, taken time.Time) {
	t.Helper()

	doc := map[string]any{
		"title": filepath.Base(path),
		"photoTakenTime": map[string]string{
			"timestamp": strconv.FormatInt(taken.Unix(), 10),
			"formatted": taken.UTC().Format(time.RFC1123),
		},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal sidecar: %v", err)
	}
	WriteFile(t, path, data)
}
