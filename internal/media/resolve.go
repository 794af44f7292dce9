package media

import (
	"path"
	"strings"
)

// ResolvePath maps an export media URI onto the flat site path the copier
// produces, e.g. "posts/media/photos/abc.jpg" becomes "media/abc.jpg". URIs
// without a usable final segment resolve to "", which tells the renderer to
// omit the element entirely.
func ResolvePath(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return ""
	}
	switch base := path.Base(uri); base {
	case "/", ".", "..":
		return ""
	default:
		return "media/" + base
	}
}
