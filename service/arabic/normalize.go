// Package arabic canonicalizes Arabic strings for comparison. Normalized
// values are matching keys only; stored and displayed values keep the
// original text.
package arabic

import (
	"strings"
	"unicode"
)

const kashida = 'ـ'

// Normalize trims the input, strips Arabic diacritical marks and the
// kashida elongation character, collapses whitespace runs into a single
// space and maps Arabic-Indic digits to ASCII.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := false
	for _, r := range text {
		switch {
		case isDiacritic(r) || r == kashida:
			continue
		case unicode.IsSpace(r):
			space = true
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(mapDigit(r))
		}
	}

	return b.String()
}

// isDiacritic reports whether r is an Arabic tashkeel mark.
func isDiacritic(r rune) bool {
	return (r >= 'ً' && r <= 'ٟ') || r == 'ٰ'
}

func mapDigit(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩': // Arabic-Indic ٠..٩
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹': // Extended Arabic-Indic ۰..۹
		return '0' + (r - '۰')
	}
	return r
}
