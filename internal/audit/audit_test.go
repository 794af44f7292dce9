package audit_test

import (
	"os"
	"path/filepath"
	"testing"

	"keepsake/internal/audit"
)

func writeSiteFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestInspectCleanSite(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "index.html", `<html><body>
<img src="media/a.jpg">
<a href="photos.html">Photos</a>
<a href="/facebook/about.html">About</a>
<a href="https://example.com/x">Elsewhere</a>
<a href="#top">Top</a>
<a href="/">Site home</a>
</body></html>`)
	writeSiteFile(t, dir, "photos.html", `<html><body><a href="/facebook/">Back</a></body></html>`)
	writeSiteFile(t, dir, "about.html", `<html><body></body></html>`)
	writeSiteFile(t, dir, "media/a.jpg", "bytes")

	report, err := audit.Inspect(dir, "/facebook/")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if !report.OK() {
		t.Fatalf("missing refs on clean site: %v", report.Missing)
	}
	if report.Pages != 3 {
		t.Errorf("pages: got %d want 3", report.Pages)
	}
	// Counted: media/a.jpg, photos.html, /facebook/about.html, /facebook/.
	// The external link, the fragment, and the out-of-base path are skipped.
	if report.Refs != 4 {
		t.Errorf("checked refs: got %d want 4", report.Refs)
	}
}

func TestInspectReportsMissing(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "index.html", `<html><body>
<img src="media/gone.jpg">
<a href="album-3.html">Lost album</a>
</body></html>`)

	report, err := audit.Inspect(dir, "/")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if report.OK() {
		t.Fatal("report claims a broken site is clean")
	}
	if len(report.Missing) != 2 {
		t.Fatalf("missing refs: got %d want 2: %v", len(report.Missing), report.Missing)
	}
	if report.Missing[0].Page != "index.html" || report.Missing[0].Ref != "media/gone.jpg" {
		t.Errorf("first missing ref: got %+v", report.Missing[0])
	}
	if report.Missing[1].Ref != "album-3.html" {
		t.Errorf("second missing ref: got %+v", report.Missing[1])
	}
}

func TestInspectRootBasePath(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "index.html", `<html><body><a href="/photos.html">Photos</a><a href="/">Home</a></body></html>`)
	writeSiteFile(t, dir, "photos.html", `<html><body></body></html>`)

	report, err := audit.Inspect(dir, "/")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if !report.OK() {
		t.Fatalf("missing refs: %v", report.Missing)
	}
	if report.Refs != 2 {
		t.Errorf("checked refs: got %d want 2", report.Refs)
	}
}

func TestInspectMissingDirectory(t *testing.T) {
	if _, err := audit.Inspect(filepath.Join(t.TempDir(), "nope"), "/"); err == nil {
		t.Fatal("Inspect succeeded on a missing directory")
	}
}
