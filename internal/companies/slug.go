package companies

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedPunctuation never appears in a company code.
const strippedPunctuation = `*+~.()'"!:@`

// Slugify derives a company code from its display name: accents are folded,
// the text is lowercased, strippedPunctuation is removed and whitespace runs
// become single hyphens.
func Slugify(name string) string {
	fold := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return strings.ContainsRune(strippedPunctuation, r)
		})),
		norm.NFC,
	)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}
	lowered := cases.Lower(language.Und).String(folded)
	parts := strings.FieldsFunc(lowered, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	return strings.Join(parts, "-")
}
