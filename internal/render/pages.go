package render

import (
	"fmt"
	"html/template"
	"strings"

	"keepsake/internal/export"
	"keepsake/internal/media"
	"keepsake/internal/textutil"
)

// placeholderCover is used for album cards whose cover photo cannot be
// resolved to a copied media file.
const placeholderCover = "media/placeholder.jpg"

// pageView holds the fields every page template needs.
type pageView struct {
	Title  string
	Styles template.CSS
	Site   Site
	Active string
}

type feedView struct {
	pageView
	CoverPhoto string
	ProfilePic string
	Posts      []postView
}

type postView struct {
	Author      string
	Avatar      string
	Date        string
	Body        template.HTML
	Media       []mediaView
	ExternalURL string
}

type mediaView struct {
	Path        string
	Description string
}

type albumIndexView struct {
	pageView
	Albums []albumCardView
}

type albumCardView struct {
	Href       string
	Cover      string
	Name       string
	PhotoCount int
}

type albumPageView struct {
	pageView
	Name       string
	PhotoCount int
	Photos     []photoView
}

type photoView struct {
	Path    string
	Caption string
	// Lightbox is the onclick attribute that opens the photo in the
	// lightbox overlay with its caption.
	Lightbox template.HTMLAttr
}

type aboutView struct {
	pageView
	ProfilePic string
	Body       template.HTML
}

// Feed renders the index page: the cover section followed by every post,
// in the order given.
func (r *Renderer) Feed(posts []export.Post, profilePic, coverPhoto string) (string, error) {
	view := feedView{
		pageView:   r.page(r.site.Name+" - "+r.site.Title, "posts"),
		CoverPhoto: coverPhoto,
		ProfilePic: profilePic,
	}
	for _, post := range posts {
		view.Posts = append(view.Posts, r.postView(post, profilePic))
	}
	return execute(r.feed, view)
}

// AlbumIndex renders the photos page listing every album in the order
// given. Album pages are addressed by position, so the caller must render
// the album pages from the same slice.
func (r *Renderer) AlbumIndex(albums []export.Album) (string, error) {
	view := albumIndexView{
		pageView: r.page("Photos - "+r.site.Name+" "+r.site.Title, "photos"),
	}
	for i, album := range albums {
		cover := placeholderCover
		if path := media.ResolvePath(album.CoverURI); path != "" {
			cover = path
		}
		view.Albums = append(view.Albums, albumCardView{
			Href:       fmt.Sprintf("album-%d.html", i),
			Cover:      cover,
			Name:       album.Name,
			PhotoCount: len(album.Photos),
		})
	}
	return execute(r.albums, view)
}

// AlbumPage renders a single album's photo grid with the lightbox overlay.
// Photos without a resolvable media path are left out.
func (r *Renderer) AlbumPage(album export.Album) (string, error) {
	view := albumPageView{
		pageView:   r.page(album.Name+" - "+r.site.Name+" "+r.site.Title, "photos"),
		Name:       album.Name,
		PhotoCount: len(album.Photos),
	}
	for _, photo := range album.Photos {
		path := media.ResolvePath(photo.URI)
		if path == "" {
			continue
		}
		view.Photos = append(view.Photos, photoView{
			Path:     path,
			Caption:  photo.Description,
			Lightbox: lightboxAttr(path, photo.Description),
		})
	}
	return execute(r.album, view)
}

// About renders the about page.
func (r *Renderer) About(profilePic string) (string, error) {
	view := aboutView{
		pageView:   r.page("About - "+r.site.Name+" "+r.site.Title, "about"),
		ProfilePic: profilePic,
		Body:       r.site.AboutHTML,
	}
	return execute(r.about, view)
}

func (r *Renderer) page(title, active string) pageView {
	return pageView{Title: title, Styles: r.styles, Site: r.site, Active: active}
}

func (r *Renderer) postView(post export.Post, profilePic string) postView {
	view := postView{
		Author:      r.site.Name,
		Avatar:      profilePic,
		Date:        textutil.FormatTimestamp(post.Timestamp),
		ExternalURL: post.ExternalURL,
	}
	if post.Text != "" {
		view.Body = template.HTML(textutil.Linkify(textutil.EscapeText(post.Text)))
	}
	for _, m := range post.Media {
		if path := media.ResolvePath(m.URI); path != "" {
			view.Media = append(view.Media, mediaView{Path: path, Description: m.Description})
		}
	}
	return view
}

// lightboxAttr builds the onclick attribute for a photo tile. The caption
// is HTML-escaped before it is embedded in the JavaScript string literal,
// and single quotes are backslash-escaped so they survive the literal.
func lightboxAttr(path, description string) template.HTMLAttr {
	caption := textutil.EscapeText(description)
	caption = strings.ReplaceAll(caption, "'", `\'`)
	return template.HTMLAttr(fmt.Sprintf("onclick=\"openLightbox('%s', '%s')\"", path, caption))
}
