package encoding

import "strings"

// NormalizeLabel implements the WHATWG Encoding Standard's label
// normalization: trim ASCII whitespace, lowercase the rest, then look
// the result up in the alias table. It returns "" if label does not
// match any known encoding, ASCII-insensitively.
func NormalizeLabel(label string) string {
	trimmed := strings.TrimFunc(label, isASCIIWhitespace)
	lower := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, trimmed)
	if canonical, ok := labelToName[lower]; ok {
		return canonical
	}
	return ""
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}
