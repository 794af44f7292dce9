package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"keepsake/internal/export"
	"keepsake/internal/media"
)

// Inventory reports what an export contains and what of it has been
// generated so far. OldestPost and NewestPost are Unix timestamps, zero when
// the feed is empty or undated.
type Inventory struct {
	Posts       int
	Albums      int
	Photos      int
	ExportMedia int
	CopiedMedia int
	Pages       int
	OldestPost  int64
	NewestPost  int64
}

// Inventory counts the export's contents and the generated site's files
// without writing anything.
func (b *Builder) Inventory(ctx context.Context) (*Inventory, error) {
	layout := export.NewLayout(b.cfg.Paths.ExportDir)
	loader := export.NewLoader(b.cfg.Paths.ExportDir, b.logger)

	inv := &Inventory{}

	posts, err := loader.LoadPosts(ctx)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	inv.Posts = len(posts)
	for _, post := range posts {
		if post.Timestamp == 0 {
			continue
		}
		if inv.OldestPost == 0 || post.Timestamp < inv.OldestPost {
			inv.OldestPost = post.Timestamp
		}
		if post.Timestamp > inv.NewestPost {
			inv.NewestPost = post.Timestamp
		}
	}

	albums, err := loader.LoadAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("load albums: %w", err)
	}
	inv.Albums = len(albums)
	for _, album := range albums {
		inv.Photos += len(album.Photos)
	}

	if inv.ExportMedia, err = media.CountFiles(layout.MediaDir); err != nil {
		return nil, fmt.Errorf("count export media: %w", err)
	}
	if inv.CopiedMedia, err = media.CountFiles(filepath.Join(b.cfg.Paths.OutputDir, "media")); err != nil {
		return nil, fmt.Errorf("count copied media: %w", err)
	}

	if inv.Pages, err = countPages(b.cfg.Paths.OutputDir); err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}
	return inv, nil
}

func countPages(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			count++
		}
	}
	return count, nil
}
