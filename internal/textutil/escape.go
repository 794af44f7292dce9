package textutil

import "strings"

// Character reference bounds: the longest named HTML entity is 32 characters,
// decimal references cover the Unicode range in 7 digits, hex in 6.
const (
	maxNamedRef  = 32
	maxDecDigits = 7
	maxHexDigits = 6
)

// EscapeText escapes text for inclusion in HTML element content or attribute
// values. Unlike html.EscapeString it is idempotent: an ampersand that
// already begins a character reference (&amp;, &#39;, &#x27;) is left alone,
// so text that has been escaped once passes through unchanged.
func EscapeText(text string) string {
	if !strings.ContainsAny(text, `&<>"'`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '&':
			if n := charRefLen(text[i+1:]); n > 0 {
				b.WriteString(text[i : i+1+n])
				i += n
			} else {
				b.WriteString("&amp;")
			}
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// charRefLen reports the length of the character reference body following an
// ampersand, including the terminating semicolon, or 0 when the ampersand
// does not begin one.
func charRefLen(s string) int {
	if s == "" {
		return 0
	}
	if s[0] == '#' {
		return numericRefLen(s)
	}
	if !isAlpha(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && isAlnum(s[i]) {
		i++
		if i > maxNamedRef {
			return 0
		}
	}
	if i < len(s) && s[i] == ';' {
		return i + 1
	}
	return 0
}

func numericRefLen(s string) int {
	if len(s) < 2 {
		return 0
	}
	if s[1] == 'x' || s[1] == 'X' {
		i := 2
		for i < len(s) && isHexDigit(s[i]) {
			i++
			if i-2 > maxHexDigits {
				return 0
			}
		}
		if i > 2 && i < len(s) && s[i] == ';' {
			return i + 1
		}
		return 0
	}
	i := 1
	for i < len(s) && isDigit(s[i]) {
		i++
		if i-1 > maxDecDigits {
			return 0
		}
	}
	if i > 1 && i < len(s) && s[i] == ';' {
		return i + 1
	}
	return 0
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
