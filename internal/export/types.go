package export

import "path/filepath"

// MediaRef points at one media file referenced by a post.
type MediaRef struct {
	URI         string
	Description string
}

// Post is one feed entry from the export, text already repaired.
type Post struct {
	Timestamp   int64
	Title       string
	Text        string
	Media       []MediaRef
	ExternalURL string
}

// Photo is one photo inside an album.
type Photo struct {
	URI         string
	Description string
	Timestamp   int64
}

// Album groups the photos of one export album file.
type Album struct {
	Name        string
	Description string
	Photos      []Photo
	CoverURI    string
}

// Layout locates the fixed files of a Facebook export underneath its root.
type Layout struct {
	PostsFile string
	AlbumDir  string
	MediaDir  string
}

// NewLayout derives the export layout from its root directory.
func NewLayout(exportDir string) Layout {
	postsDir := filepath.Join(exportDir, "posts")
	return Layout{
		PostsFile: filepath.Join(postsDir, "profile_posts_1.json"),
		AlbumDir:  filepath.Join(postsDir, "album"),
		MediaDir:  filepath.Join(postsDir, "media"),
	}
}
