package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"keepsake/internal/textutil"
)

//go:embed templates
var templateFS embed.FS

// Site carries the identity strings rendered into every page.
type Site struct {
	// Title is the archive title suffix used in page titles, for example
	// "Facebook Archive".
	Title string
	// Name is the name of the Facebook Page the export came from.
	Name           string
	Tagline        string
	BannerText     string
	BannerLinkText string
	BannerLinkURL  string
	// BasePath is the absolute URL prefix the site is served under. It
	// always starts and ends with a slash.
	BasePath string
	// AboutHTML is the body of the about page. When empty a default body
	// derived from Name is used.
	AboutHTML template.HTML
}

// Renderer builds complete HTML documents for the archive.
type Renderer struct {
	site   Site
	styles template.CSS

	feed   *template.Template
	albums *template.Template
	album  *template.Template
	about  *template.Template
}

// New parses the embedded templates and returns a renderer for site.
func New(site Site) (*Renderer, error) {
	if site.Title == "" {
		site.Title = "Facebook Archive"
	}
	if site.BasePath == "" {
		site.BasePath = "/"
	}
	if site.AboutHTML == "" {
		site.AboutHTML = defaultAboutHTML(site.Name)
	}

	styles, err := templateFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	r := &Renderer{site: site, styles: template.CSS(styles)}
	if r.feed, err = parsePage("feed.tmpl"); err != nil {
		return nil, err
	}
	if r.albums, err = parsePage("albums.tmpl"); err != nil {
		return nil, err
	}
	if r.album, err = parsePage("album.tmpl"); err != nil {
		return nil, err
	}
	if r.about, err = parsePage("about.tmpl"); err != nil {
		return nil, err
	}
	return r, nil
}

func parsePage(name string) (*template.Template, error) {
	t, err := template.New(name).ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return t, nil
}

func execute(t *template.Template, view any) (string, error) {
	var buf strings.Builder
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute template %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func defaultAboutHTML(name string) template.HTML {
	escaped := textutil.EscapeText(name)
	return template.HTML(fmt.Sprintf(
		"<p>This is an archived copy of the %s Facebook Page.</p>\n                <p>This archive preserves the posts, photos, and other content that was shared on the Page.</p>",
		escaped,
	))
}
