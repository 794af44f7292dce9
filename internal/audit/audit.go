// Package audit verifies a generated site by parsing every page and
// checking that local image and link targets exist on disk. It catches the
// archive's most common defect: a page referencing media the export never
// contained.
package audit

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MissingRef names a reference on a page that no generated file satisfies.
type MissingRef struct {
	Page string
	Ref  string
}

// Report summarizes an audit pass over a generated site.
type Report struct {
	Pages   int
	Refs    int
	Missing []MissingRef
}

// OK reports whether every checked reference resolved.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Inspect parses every HTML page directly under dir and resolves the local
// references they carry. References with a scheme or host are external and
// skipped; absolute paths are checked only when they fall under basePath.
func Inspect(dir, basePath string) (*Report, error) {
	basePath = normalizeBasePath(basePath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read site directory: %w", err)
	}

	report := &Report{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		if err := inspectPage(dir, entry.Name(), basePath, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func inspectPage(dir, page, basePath string, report *Report) error {
	f, err := os.Open(filepath.Join(dir, page))
	if err != nil {
		return fmt.Errorf("open %s: %w", page, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", page, err)
	}
	report.Pages++

	doc.Find("img[src], a[href]").Each(func(_ int, s *goquery.Selection) {
		ref, ok := refTarget(s)
		if !ok {
			return
		}
		rel, ok := localTarget(ref, basePath)
		if !ok {
			return
		}
		report.Refs++
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			report.Missing = append(report.Missing, MissingRef{Page: page, Ref: ref})
		}
	})
	return nil
}

func refTarget(s *goquery.Selection) (string, bool) {
	if src, ok := s.Attr("src"); ok {
		return src, true
	}
	return s.Attr("href")
}

// localTarget maps a reference to the site-relative file it should resolve
// to. The second return is false for external, unparseable, or empty
// references and for absolute paths outside basePath.
func localTarget(ref, basePath string) (string, bool) {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	target := u.Path
	if target == "" {
		// Fragment-only or empty reference, nothing to resolve.
		return "", false
	}

	if strings.HasPrefix(target, "/") {
		if !strings.HasPrefix(target, basePath) {
			return "", false
		}
		target = strings.TrimPrefix(target, basePath)
	}
	if target == "" || strings.HasSuffix(target, "/") {
		target += "index.html"
	}
	return target, true
}

func normalizeBasePath(basePath string) string {
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}
