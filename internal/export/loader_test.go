package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"keepsake/internal/export"
	"keepsake/internal/logging"
)

func writeExportFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadPostsParsesAndSortsNewestFirst(t *testing.T) {
	exportDir := t.TempDir()
	writeExportFile(t, filepath.Join(exportDir, "posts", "profile_posts_1.json"), `[
  {"timestamp": 100, "title": "Older post", "data": [{"post": "first body"}]},
  {
    "timestamp": 300,
    "title": "TÃ©st post",
    "data": [{"update_timestamp": 1}, {"post": "Check https://example.com"}],
    "attachments": [
      {"data": [
        {"media": {"uri": "posts/media/photos/one.jpg", "description": "First"}},
        {"external_context": {"url": "https://first.example"}}
      ]},
      {"data": [
        {"media": {"uri": "posts/media/photos/two.jpg"}},
        {"external_context": {"url": "https://second.example"}}
      ]}
    ]
  },
  {"title": "No timestamp"},
  {"timestamp": 300, "title": "Same time later in file"}
]`)

	loader := export.NewLoader(exportDir, logging.NewNop())
	posts, err := loader.LoadPosts(context.Background())
	if err != nil {
		t.Fatalf("LoadPosts returned error: %v", err)
	}
	if len(posts) != 4 {
		t.Fatalf("expected 4 posts, got %d", len(posts))
	}

	if posts[0].Title != "Tést post" {
		t.Fatalf("expected repaired title first, got %q", posts[0].Title)
	}
	if posts[0].Text != "Check https://example.com" {
		t.Fatalf("unexpected body text: %q", posts[0].Text)
	}
	if len(posts[0].Media) != 2 {
		t.Fatalf("expected 2 media refs, got %d", len(posts[0].Media))
	}
	if posts[0].Media[0].Description != "First" {
		t.Fatalf("unexpected media description: %q", posts[0].Media[0].Description)
	}
	if posts[0].ExternalURL != "https://first.example" {
		t.Fatalf("expected first external url to win, got %q", posts[0].ExternalURL)
	}

	if posts[1].Title != "Same time later in file" {
		t.Fatalf("stable sort violated: got %q second", posts[1].Title)
	}
	if posts[2].Timestamp != 100 {
		t.Fatalf("expected older post third, got ts %d", posts[2].Timestamp)
	}
	if posts[3].Title != "No timestamp" || posts[3].Timestamp != 0 {
		t.Fatalf("expected undated post last, got %q ts %d", posts[3].Title, posts[3].Timestamp)
	}
}

func TestLoadPostsSkipsMalformedEntries(t *testing.T) {
	exportDir := t.TempDir()
	writeExportFile(t, filepath.Join(exportDir, "posts", "profile_posts_1.json"),
		`[{"timestamp": 1, "title": "good"}, {"data": [{"post": 123}]}]`)

	loader := export.NewLoader(exportDir, logging.NewNop())
	posts, err := loader.LoadPosts(context.Background())
	if err != nil {
		t.Fatalf("LoadPosts returned error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected malformed entry skipped, got %d posts", len(posts))
	}
	if posts[0].Title != "good" {
		t.Fatalf("unexpected surviving post: %q", posts[0].Title)
	}
}

func TestLoadPostsMissingFile(t *testing.T) {
	loader := export.NewLoader(t.TempDir(), logging.NewNop())
	if _, err := loader.LoadPosts(context.Background()); err == nil {
		t.Fatal("expected error for missing posts file")
	}
}

func TestLoadAlbums(t *testing.T) {
	exportDir := t.TempDir()
	albumDir := filepath.Join(exportDir, "posts", "album")
	writeExportFile(t, filepath.Join(albumDir, "0_trip.json"), `{
  "name": "Trip",
  "cover_photo": {"uri": "posts/media/cover1.jpg"},
  "photos": [
    {"uri": "posts/media/a.jpg", "description": "CafÃ©", "creation_timestamp": 10},
    {"uri": "posts/media/b.jpg"}
  ]
}`)
	writeExportFile(t, filepath.Join(albumDir, "1_fallback.json"), `{
  "name": "Second",
  "photos": [{"uri": "posts/media/c.jpg", "creation_timestamp": 20}]
}`)
	writeExportFile(t, filepath.Join(albumDir, "2_empty.json"), `{"name": "Empty", "photos": []}`)
	writeExportFile(t, filepath.Join(albumDir, "3_broken.json"), `{not json`)
	writeExportFile(t, filepath.Join(albumDir, "notes.txt"), `not an album`)

	loader := export.NewLoader(exportDir, logging.NewNop())
	albums, err := loader.LoadAlbums(context.Background())
	if err != nil {
		t.Fatalf("LoadAlbums returned error: %v", err)
	}
	if len(albums) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(albums))
	}

	if albums[0].Name != "Trip" {
		t.Fatalf("expected lexicographic order, got %q first", albums[0].Name)
	}
	if albums[0].CoverURI != "posts/media/cover1.jpg" {
		t.Fatalf("expected explicit cover, got %q", albums[0].CoverURI)
	}
	if albums[0].Photos[0].Description != "Café" {
		t.Fatalf("expected repaired photo description, got %q", albums[0].Photos[0].Description)
	}
	if albums[0].Photos[1].Timestamp != 0 {
		t.Fatalf("expected default photo timestamp, got %d", albums[0].Photos[1].Timestamp)
	}

	if albums[1].Name != "Second" {
		t.Fatalf("unexpected second album: %q", albums[1].Name)
	}
	if albums[1].CoverURI != "posts/media/c.jpg" {
		t.Fatalf("expected first-photo cover fallback, got %q", albums[1].CoverURI)
	}
}

func TestLoadAlbumsMissingDirectory(t *testing.T) {
	loader := export.NewLoader(t.TempDir(), logging.NewNop())
	albums, err := loader.LoadAlbums(context.Background())
	if err != nil {
		t.Fatalf("LoadAlbums returned error: %v", err)
	}
	if albums != nil {
		t.Fatalf("expected no albums, got %d", len(albums))
	}
}

func TestLoadAlbumsNameDefaults(t *testing.T) {
	exportDir := t.TempDir()
	albumDir := filepath.Join(exportDir, "posts", "album")
	writeExportFile(t, filepath.Join(albumDir, "unnamed.json"),
		`{"photos": [{"uri": "posts/media/x.jpg"}]}`)

	loader := export.NewLoader(exportDir, logging.NewNop())
	albums, err := loader.LoadAlbums(context.Background())
	if err != nil {
		t.Fatalf("LoadAlbums returned error: %v", err)
	}
	if len(albums) != 1 {
		t.Fatalf("expected 1 album, got %d", len(albums))
	}
	if albums[0].Name != "Untitled Album" {
		t.Fatalf("expected default name, got %q", albums[0].Name)
	}
}
