package builder

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"keepsake/internal/config"
	"keepsake/internal/export"
	"keepsake/internal/logging"
	"keepsake/internal/media"
	"keepsake/internal/render"
)

// lockFileName guards the output directory against concurrent builds.
const lockFileName = ".keepsake.lock"

// Builder orchestrates a full site build from an export.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs a builder for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "builder"),
	}
}

// pageJob pairs an output filename with the render call that produces it.
type pageJob struct {
	name   string
	render func() (string, error)
}

// Result summarizes a finished build.
type Result struct {
	Posts        int
	Albums       int
	Photos       int
	MediaCopied  int
	MediaSkipped int
	Pages        []string
	Elapsed      time.Duration
}

// Run builds the whole site. Media is copied before any page is written so
// every page reference points at a file that already exists. The output
// directory is locked for the duration of the build; a second build against
// the same output fails instead of interleaving writes.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := b.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("prepare output directory: %w", err)
	}

	lockPath := filepath.Join(b.cfg.Paths.OutputDir, lockFileName)
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another keepsake build is already writing to %s", b.cfg.Paths.OutputDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			b.logger.Warn("failed to release build lock", logging.Error(err))
		}
	}()

	layout := export.NewLayout(b.cfg.Paths.ExportDir)
	copier := media.NewCopier(layout.MediaDir, b.cfg.Paths.OutputDir, b.logger)
	copied, skipped, err := copier.CopyAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("copy media: %w", err)
	}

	loader := export.NewLoader(b.cfg.Paths.ExportDir, b.logger)
	posts, err := loader.LoadPosts(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// A missing or broken feed file empties the feed instead of
		// aborting the build.
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("posts file missing, building an empty feed",
				logging.String("file", layout.PostsFile))
		} else {
			b.logger.Warn("posts file unreadable, building an empty feed",
				logging.String("file", layout.PostsFile),
				logging.Error(err))
		}
		posts = nil
	}

	albums, err := loader.LoadAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("load albums: %w", err)
	}

	profilePic, coverPhoto := b.identity(albums)
	b.logger.Info("using page identity",
		logging.String("profile_picture", profilePic),
		logging.String("cover_photo", coverPhoto))

	aboutHTML := b.aboutBody()
	renderer, err := render.New(render.Site{
		Title:          b.cfg.Site.Title,
		Name:           b.cfg.Site.Name,
		Tagline:        b.cfg.Site.Tagline,
		BannerText:     b.cfg.Site.BannerText,
		BannerLinkText: b.cfg.Site.BannerLinkText,
		BannerLinkURL:  b.cfg.Site.BannerLinkURL,
		BasePath:       b.cfg.Site.BasePath,
		AboutHTML:      aboutHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("prepare renderer: %w", err)
	}

	result := &Result{
		Posts:        len(posts),
		Albums:       len(albums),
		MediaCopied:  copied,
		MediaSkipped: skipped,
	}
	for _, album := range albums {
		result.Photos += len(album.Photos)
	}

	pages := []pageJob{
		{"index.html", func() (string, error) { return renderer.Feed(posts, profilePic, coverPhoto) }},
		{"photos.html", func() (string, error) { return renderer.AlbumIndex(albums) }},
	}
	for i, album := range albums {
		pages = append(pages, pageJob{
			fmt.Sprintf("album-%d.html", i),
			func() (string, error) { return renderer.AlbumPage(album) },
		})
	}
	pages = append(pages, pageJob{"about.html", func() (string, error) { return renderer.About(profilePic) }})

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := page.render()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", page.name, err)
		}
		if err := b.writePage(page.name, content); err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, page.name)
	}

	result.Elapsed = time.Since(start)
	b.logger.Info("archive built",
		logging.Int("posts", result.Posts),
		logging.Int("albums", result.Albums),
		logging.Int("pages", len(result.Pages)),
		logging.Duration("elapsed", result.Elapsed))
	return result, nil
}

func (b *Builder) writePage(name, content string) error {
	path := filepath.Join(b.cfg.Paths.OutputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	b.logger.Debug("page written", logging.String("page", name))
	return nil
}

// identity resolves the profile picture and cover photo for the page. The
// configured defaults stand unless a matching album provides a usable first
// photo.
func (b *Builder) identity(albums []export.Album) (profilePic, coverPhoto string) {
	profilePic = b.cfg.Site.ProfilePicture
	coverPhoto = b.cfg.Site.CoverPhoto

	if path, ok := albumLeadPhoto(albums, "profile"); ok {
		profilePic = path
	}
	if path, ok := albumLeadPhoto(albums, "cover"); ok {
		coverPhoto = path
	}
	return profilePic, coverPhoto
}

// albumLeadPhoto returns the media path of the first photo in the first
// album whose name contains keyword. The first matching album decides: when
// its photo cannot be resolved the caller's default stands rather than a
// later album winning.
func albumLeadPhoto(albums []export.Album, keyword string) (string, bool) {
	for _, album := range albums {
		if !strings.Contains(strings.ToLower(album.Name), keyword) || len(album.Photos) == 0 {
			continue
		}
		if path := media.ResolvePath(album.Photos[0].URI); path != "" {
			return path, true
		}
		return "", false
	}
	return "", false
}

// aboutBody renders the configured about page markdown. An absent setting
// or an unreadable file falls back to the renderer's default body.
func (b *Builder) aboutBody() template.HTML {
	if b.cfg.Site.AboutPage == "" {
		return ""
	}
	src, err := os.ReadFile(b.cfg.Site.AboutPage)
	if err != nil {
		b.logger.Warn("about page unreadable, using default body",
			logging.String("file", b.cfg.Site.AboutPage),
			logging.Error(err))
		return ""
	}
	body, err := render.RenderMarkdown(src)
	if err != nil {
		b.logger.Warn("about page markdown failed, using default body",
			logging.String("file", b.cfg.Site.AboutPage),
			logging.Error(err))
		return ""
	}
	return body
}
