package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteExportFile writes content to rel under the export root, creating
// parent directories as needed.
func WriteExportFile(t testing.TB, exportDir, rel, content string) {
	t.Helper()

	path := filepath.Join(exportDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// SeedExport lays down a small but complete export tree: three posts, a
// profile pictures album, a cover photos album, a regular album, and the
// media files they reference. Tests that need exact numbers can rely on
// 3 posts, 3 albums, 4 photos, and 5 media files.
func SeedExport(t testing.TB, exportDir string) {
	t.Helper()

	WriteExportFile(t, exportDir, "posts/profile_posts_1.json", `[
  {
    "timestamp": 1700000000,
    "data": [{"post": "Second post with https://example.com/page"}],
    "attachments": [
      {"data": [{"media": {"uri": "posts/media/photo_b.jpg", "description": "B photo"}}]}
    ]
  },
  {
    "timestamp": 1600000000,
    "data": [{"post": "First post"}]
  },
  {
    "timestamp": 1800000000,
    "data": [{"post": "Newest post"}],
    "attachments": [
      {"data": [{"external_context": {"url": "https://example.org/linked"}}]}
    ]
  }
]`)

	WriteExportFile(t, exportDir, "posts/album/0_profile.json", `{
  "name": "Profile Pictures",
  "photos": [{"uri": "posts/media/profile_new.jpg", "description": "", "creation_timestamp": 1500000000}]
}`)
	WriteExportFile(t, exportDir, "posts/album/1_cover.json", `{
  "name": "Cover Photos",
  "photos": [{"uri": "posts/media/cover_new.jpg", "description": "", "creation_timestamp": 1500000100}]
}`)
	WriteExportFile(t, exportDir, "posts/album/2_trip.json", `{
  "name": "Summer Trip",
  "description": "Two weeks on the road",
  "cover_photo": {"uri": "posts/media/trip_1.jpg"},
  "photos": [
    {"uri": "posts/media/trip_1.jpg", "description": "Day one", "creation_timestamp": 1650000000},
    {"uri": "posts/media/trip_2.jpg", "description": "Day two", "creation_timestamp": 1650000100}
  ]
}`)

	for _, name := range []string{"photo_b.jpg", "profile_new.jpg", "cover_new.jpg", "trip_1.jpg", "trip_2.jpg"} {
		WriteExportFile(t, exportDir, "posts/media/"+name, "image bytes for "+name)
	}
}
