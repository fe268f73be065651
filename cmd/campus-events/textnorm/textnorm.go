// Package textnorm canonicalizes free text before it is compared against a
// moderation denylist.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block, U+0300–U+036F.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// homoglyphs maps Cyrillic letters to the Latin letters they are typically
// passed off as; letters without a look-alike are transliterated.
var homoglyphs = strings.NewReplacer(
	"а", "a", "б", "b", "в", "b", "г", "g", "д", "d",
	"е", "e", "ё", "e", "ж", "zh", "з", "z", "и", "i",
	"й", "i", "к", "k", "л", "l", "м", "m", "н", "h",
	"о", "o", "п", "n", "р", "p", "с", "c", "т", "t",
	"у", "y", "ф", "f", "х", "x", "ц", "ts", "ч", "ch",
	"ш", "sh", "щ", "sch", "ъ", "", "ы", "y", "ь", "",
	"э", "e", "ю", "yu", "я", "ya", "і", "i", "ї", "i",
	"є", "e", "ѕ", "s", "ј", "j",
)

var leetspeak = strings.NewReplacer(
	"4", "a", "1", "i", "0", "o", "$", "s", "@", "a",
	"3", "e", "5", "s", "7", "t", "8", "b", "9", "g",
)

// Normalize lowercases text, strips accents, folds Cyrillic look-alikes and
// leetspeak to Latin letters, turns punctuation into spaces and collapses
// whitespace. Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = stripDiacritics(s)
	s = homoglyphs.Replace(s)
	s = leetspeak.Replace(s)
	s = strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// transform.String only fails on malformed chains; keep the lowercase text.
		return s
	}
	return out
}

// isWordRune matches the ASCII word class [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
