package export

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"keepsake/internal/logging"
	"keepsake/internal/textutil"
)

// Exports spell optional fields out instead of relying on every object
// looking the same; the raw types below declare exactly which keys matter
// and which may be absent.
type rawPost struct {
	Timestamp   int64           `json:"timestamp"`
	Title       string          `json:"title"`
	Data        []rawPostData   `json:"data"`
	Attachments []rawAttachment `json:"attachments"`
}

type rawPostData struct {
	Post *string `json:"post"`
}

type rawAttachment struct {
	Data []rawAttachmentData `json:"data"`
}

type rawAttachmentData struct {
	Media           *rawMedia           `json:"media"`
	ExternalContext *rawExternalContext `json:"external_context"`
}

type rawMedia struct {
	URI         string `json:"uri"`
	Description string `json:"description"`
}

type rawExternalContext struct {
	URL string `json:"url"`
}

type rawAlbum struct {
	Name        *string        `json:"name"`
	Description string         `json:"description"`
	Photos      []rawPhoto     `json:"photos"`
	CoverPhoto  *rawCoverPhoto `json:"cover_photo"`
}

type rawPhoto struct {
	URI               string `json:"uri"`
	Description       string `json:"description"`
	CreationTimestamp int64  `json:"creation_timestamp"`
}

type rawCoverPhoto struct {
	URI string `json:"uri"`
}

// Loader reads posts and albums from an export.
type Loader struct {
	layout Layout
	logger *slog.Logger
}

// NewLoader returns a Loader for the export rooted at exportDir.
func NewLoader(exportDir string, logger *slog.Logger) *Loader {
	return &Loader{
		layout: NewLayout(exportDir),
		logger: logging.NewComponentLogger(logger, "export"),
	}
}

// LoadPosts reads the feed and returns it sorted newest first. The sort is
// stable, so posts sharing a timestamp keep their file order; posts without
// a timestamp sink to the end. A missing or unparseable feed file is
// reported as an error and the caller decides whether that empties the feed
// or aborts the build.
func (l *Loader) LoadPosts(ctx context.Context) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.layout.PostsFile)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}

	var messages []json.RawMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse posts file: %w", err)
	}

	posts := make([]Post, 0, len(messages))
	for i, message := range messages {
		var raw rawPost
		if err := json.Unmarshal(message, &raw); err != nil {
			l.logger.Warn("skipping malformed post",
				logging.Int("index", i),
				logging.Error(err))
			continue
		}
		posts = append(posts, buildPost(raw))
	}

	slices.SortStableFunc(posts, func(a, b Post) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})

	l.logger.Info("posts loaded", logging.Int("count", len(posts)))
	return posts, nil
}

// LoadAlbums reads every album file in lexicographic filename order. Albums
// without photos are dropped; files that cannot be read or parsed are
// skipped with a diagnostic. A missing album directory simply yields no
// albums.
func (l *Loader) LoadAlbums(ctx context.Context) ([]Album, error) {
	entries, err := os.ReadDir(l.layout.AlbumDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no album directory in export", logging.String("dir", l.layout.AlbumDir))
			return nil, nil
		}
		return nil, fmt.Errorf("read album directory: %w", err)
	}

	var albums []Album
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(l.layout.AlbumDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("skipping unreadable album file",
				logging.String("file", entry.Name()),
				logging.Error(err))
			continue
		}

		var raw rawAlbum
		if err := json.Unmarshal(data, &raw); err != nil {
			l.logger.Warn("skipping malformed album file",
				logging.String("file", entry.Name()),
				logging.Error(err))
			continue
		}

		album := buildAlbum(raw)
		if len(album.Photos) == 0 {
			l.logger.Debug("skipping album without photos",
				logging.String("file", entry.Name()),
				logging.String("album", album.Name))
			continue
		}
		albums = append(albums, album)
	}

	l.logger.Info("albums loaded", logging.Int("count", len(albums)))
	return albums, nil
}

func buildPost(raw rawPost) Post {
	post := Post{
		Timestamp: raw.Timestamp,
		Title:     textutil.RepairEncoding(raw.Title),
	}

	for _, d := range raw.Data {
		if d.Post != nil {
			post.Text = textutil.RepairEncoding(*d.Post)
			break
		}
	}

	for _, attachment := range raw.Attachments {
		for _, item := range attachment.Data {
			if item.Media != nil {
				post.Media = append(post.Media, MediaRef{
					URI:         item.Media.URI,
					Description: textutil.RepairEncoding(item.Media.Description),
				})
			}
			if post.ExternalURL == "" && item.ExternalContext != nil && item.ExternalContext.URL != "" {
				post.ExternalURL = item.ExternalContext.URL
			}
		}
	}

	return post
}

func buildAlbum(raw rawAlbum) Album {
	name := "Untitled Album"
	if raw.Name != nil {
		name = *raw.Name
	}

	album := Album{
		Name:        textutil.RepairEncoding(name),
		Description: textutil.RepairEncoding(raw.Description),
	}
	for _, p := range raw.Photos {
		album.Photos = append(album.Photos, Photo{
			URI:         p.URI,
			Description: textutil.RepairEncoding(p.Description),
			Timestamp:   p.CreationTimestamp,
		})
	}

	switch {
	case raw.CoverPhoto != nil && strings.TrimSpace(raw.CoverPhoto.URI) != "":
		album.CoverURI = raw.CoverPhoto.URI
	case len(album.Photos) > 0:
		album.CoverURI = album.Photos[0].URI
	}

	return album
}
