package companion_test

import (
	"os"
	"path/filepath"
	"testing"

	"snapmend/internal/companion"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func mustResolve(t *testing.T, dir, media string) string {
	t.Helper()
	path, ok := companion.Resolve(filepath.Join(dir, media))
	if !ok {
		t.Fatalf("expected a companion for %s", media)
	}
	return path
}

func TestResolveDirectPlainName(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg", "foo.json")

	if got := mustResolve(t, dir, "foo.jpg"); got != filepath.Join(dir, "foo.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveDirectNameWithExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg", "foo.jpg.json")

	if got := mustResolve(t, dir, "foo.jpg"); got != filepath.Join(dir, "foo.jpg.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveSupplementalMetadataName(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg", "foo.jpg.supplemental-metadata.json")

	if got := mustResolve(t, dir, "foo.jpg"); got != filepath.Join(dir, "foo.jpg.supplemental-metadata.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolvePrefersPlainNameOverSupplemental(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg", "foo.jpg.json", "foo.jpg.supplemental-metadata.json")

	if got := mustResolve(t, dir, "foo.jpg"); got != filepath.Join(dir, "foo.jpg.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveEditedDerivativeUsesOriginalSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo-edited.jpg", "foo.jpg.json")

	if got := mustResolve(t, dir, "foo-edited.jpg"); got != filepath.Join(dir, "foo.jpg.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveRelocatedCounter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo(1).jpg", "foo.jpg(1).json")

	if got := mustResolve(t, dir, "foo(1).jpg"); got != filepath.Join(dir, "foo.jpg(1).json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveRelocatedCounterSupplemental(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo(2).jpg", "foo.jpg.supplemental-metadata(2).json")

	if got := mustResolve(t, dir, "foo(2).jpg"); got != filepath.Join(dir, "foo.jpg.supplemental-metadata(2).json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveTruncatedTrailingCharacter(t *testing.T) {
	cases := []struct {
		media   string
		sidecar string
	}{
		{"IMG_20200101_1234_n-.jpg", "IMG_20200101_1234_n.jpg.json"},
		{"IMG_20200101_1234_n.jpg", "IMG_20200101_1234_.jpg.json"},
		{"IMG_20200101_1234_.jpg", "IMG_20200101_1234.jpg.json"},
	}

	for _, tc := range cases {
		dir := t.TempDir()
		writeFiles(t, dir, tc.media, tc.sidecar)

		if got := mustResolve(t, dir, tc.media); got != filepath.Join(dir, tc.sidecar) {
			t.Errorf("media %s: unexpected companion %s", tc.media, got)
		}
	}
}

func TestResolveSupplementalPrefixScan(t *testing.T) {
	dir := t.TempDir()
	// Two sibling media files of different types sharing one sidecar whose
	// name embeds the other sibling's extension.
	writeFiles(t, dir, "scan.png", "scan.jpg.supplemental-metadata.json")

	if got := mustResolve(t, dir, "scan.png"); got != filepath.Join(dir, "scan.jpg.supplemental-metadata.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveCounterParityRejectsMismatchedSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "SNOW.mp4", "SNOW.mp4.supplemental-metadata(1).json")

	// The sidecar carries a counter the media stem lacks; the scan must not
	// claim it (it belongs to a sibling) but the supplemental prefix scan
	// ranked ahead of the parity-gated scan does not apply either, because
	// the entry does not end in the bare supplemental suffix.
	if _, ok := companion.Resolve(filepath.Join(dir, "SNOW.mp4")); ok {
		t.Fatal("expected no companion for counter-mismatched sidecar")
	}
}

func TestResolveCounterParityAcceptsMatchingSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "SNOW(1).mp4", "SNOW(1).mp4.extra(1).json")

	if got := mustResolve(t, dir, "SNOW(1).mp4"); got != filepath.Join(dir, "SNOW(1).mp4.extra(1).json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveReverseTruncatedSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A_very_long_burst_photo_name_0042.jpg", "A_very_long_burst_photo_na.json")

	got := mustResolve(t, dir, "A_very_long_burst_photo_name_0042.jpg")
	if got != filepath.Join(dir, "A_very_long_burst_photo_na.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveScanOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"burst_photo.jpg",
		"burst_pho.json",
		"burst_phot.json",
	)

	// Both entries are prefixes of the stem; the lexicographically first one
	// must win regardless of directory enumeration order.
	got := mustResolve(t, dir, "burst_photo.jpg")
	if got != filepath.Join(dir, "burst_pho.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveVideoFallsBackToImageSibling(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "IMG_0201.MP4", "IMG_0201.jpg", "IMG_0201.jpg.supplemental-metadata.json")

	if got := mustResolve(t, dir, "IMG_0201.MP4"); got != filepath.Join(dir, "IMG_0201.jpg.supplemental-metadata.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveVideoSiblingWithCounterPrefersRelocatedSupplemental(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"IMG_0201(1).mp4",
		"IMG_0201(1).jpg",
		"IMG_0201.jpg.supplemental-metadata(1).json",
	)

	got := mustResolve(t, dir, "IMG_0201(1).mp4")
	if got != filepath.Join(dir, "IMG_0201.jpg.supplemental-metadata(1).json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveVideoSiblingWithoutCounter(t *testing.T) {
	dir := t.TempDir()
	// The counterless sibling image carries the sidecar.
	writeFiles(t, dir,
		"IMG_0201(1).mp4",
		"IMG_0201.jpg",
		"IMG_0201.jpg.supplemental-metadata.json",
	)

	got := mustResolve(t, dir, "IMG_0201(1).mp4")
	if got != filepath.Join(dir, "IMG_0201.jpg.supplemental-metadata.json") {
		t.Fatalf("unexpected companion %s", got)
	}
}

func TestResolveImageNeverUsesSiblingFallback(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "pair.png", "pair.jpg")

	if _, ok := companion.Resolve(filepath.Join(dir, "pair.png")); ok {
		t.Fatal("expected no companion: sibling fallback applies to videos only")
	}
}

func TestResolveNothingFound(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "lonely.jpg")

	if path, ok := companion.Resolve(filepath.Join(dir, "lonely.jpg")); ok {
		t.Fatalf("expected no companion, got %s", path)
	}
}

func TestResolveMissingDirectoryDegradesToNotFound(t *testing.T) {
	if path, ok := companion.Resolve("/nonexistent/dir/photo.jpg"); ok {
		t.Fatalf("expected no companion, got %s", path)
	}
}

func TestResolveNeverReturnsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg")
	if err := os.Mkdir(filepath.Join(dir, "foo.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if path, ok := companion.Resolve(filepath.Join(dir, "foo.jpg")); ok {
		t.Fatalf("expected no companion, got %s", path)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg", "foo.jpg.json")

	first, okFirst := companion.Resolve(filepath.Join(dir, "foo.jpg"))
	second, okSecond := companion.Resolve(filepath.Join(dir, "foo.jpg"))
	if okFirst != okSecond || first != second {
		t.Fatalf("resolution not idempotent: (%q, %v) vs (%q, %v)", first, okFirst, second, okSecond)
	}
}

func TestLookupReportsStrategy(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "foo.jpg", "foo.jpg.json")

	match, ok := companion.Lookup(filepath.Join(dir, "foo.jpg"))
	if !ok {
		t.Fatal("expected a companion")
	}
	if match.Strategy != "direct" {
		t.Fatalf("unexpected strategy %q", match.Strategy)
	}
}
