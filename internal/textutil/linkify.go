package textutil

import "regexp"

// urlPattern matches bare http and https URLs up to the delimiter characters
// that commonly terminate a pasted link. Query strings and fragments are
// kept as part of the match.
var urlPattern = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")

// Linkify wraps every bare URL in text with an anchor tag that opens in a new
// tab. The input is expected to be escaped already; Linkify inserts markup,
// so from this point on the result must be treated as HTML.
func Linkify(text string) string {
	return urlPattern.ReplaceAllString(text, `<a href="$0" target="_blank" rel="noopener">$0</a>`)
}
