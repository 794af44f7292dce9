package textutil

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// RepairEncoding reverses the double-encoding Facebook data exports apply to
// text: UTF-8 bytes stored as if they were Latin-1 code points. The string is
// narrowed back to single bytes through ISO 8859-1; when every rune fits in
// Latin-1 and the recovered bytes form valid UTF-8, the repaired string is
// returned. Text that fails either step was not mojibake and is returned
// unchanged, so the function is safe to apply to every string field.
func RepairEncoding(text string) string {
	if text == "" {
		return ""
	}
	raw, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		// A rune above U+00FF means this was never Latin-1-read UTF-8.
		return text
	}
	if !utf8.ValidString(raw) {
		return text
	}
	return raw
}
