package diff

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// tokenize splits s into comparison tokens: lines by default, grapheme
// clusters in character mode. Invalid UTF-8 is rejected up front so token
// equality is always a comparison of well-formed text.
func tokenize(s string, chars bool) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	if chars {
		return splitGraphemes(s), nil
	}
	return splitLines(s), nil
}

// splitLines splits s after every LF, CR, or CRLF, keeping the terminator on
// its line. A CR directly followed by LF counts as one terminator; any other
// CR or LF stands alone. The last line may have no terminator, and empty
// input has no lines.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '\n':
			i++
			lines = append(lines, s[start:i])
			start = i
		case '\r':
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
			lines = append(lines, s[start:i])
			start = i
		default:
			i++
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitGraphemes(s string) []string {
	var toks []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		toks = append(toks, iter.Value())
	}
	return toks
}

// trimEOL strips one trailing line terminator for display.
func trimEOL(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}
