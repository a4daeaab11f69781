package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameSuffixes maps lower-cased suffix tokens to their canonical short form.
var nameSuffixes = map[string]string{
	"jr":   "Jr",
	"sr":   "Sr",
	"i":    "I",
	"ii":   "II",
	"iii":  "III",
	"iv":   "IV",
	"v":    "V",
	"vi":   "VI",
	"vii":  "VII",
	"viii": "VIII",
	"ix":   "IX",
	"x":    "X",
}

// nameTitles are honorifics dropped from names.
var nameTitles = map[string]bool{
	"dr":   true,
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"miss": true,
	"mx":   true,
	"prof": true,
	"rev":  true,
	"hon":  true,
	"sen":  true,
	"rep":  true,
	"gov":  true,
}

// NormalizeName converts "LAST, FIRST [SUFFIX]" into "First Last [Suffix]".
// Names without a comma are assumed to already be in that order and are
// returned unchanged.
func NormalizeName(raw string) string {
	last, rest, found := strings.Cut(raw, ",")
	if !found {
		return raw
	}

	var given, suffixes []string

	for _, tok := range strings.Fields(strings.ReplaceAll(rest, ",", " ")) {
		key := strings.ToLower(strings.TrimSuffix(tok, "."))

		if nameTitles[key] {
			continue
		}

		// a lone "I" or "V" right after the comma is an initial, not a numeral
		if suffix, ok := nameSuffixes[key]; ok && (len(given) > 0 || (key != "i" && key != "v")) {
			suffixes = append(suffixes, suffix)

			continue
		}

		given = append(given, capitalize(tok))
	}

	parts := make([]string, 0, len(given)+1+len(suffixes))
	parts = append(parts, given...)

	if surname := capitalize(strings.Join(strings.Fields(last), " ")); surname != "" {
		parts = append(parts, surname)
	}

	parts = append(parts, suffixes...)

	return strings.Join(parts, " ")
}

// capitalize title-cases a name part. Single letters are left alone.
func capitalize(s string) string {
	if len([]rune(s)) <= 1 {
		return s
	}

	return cases.Title(language.English).String(s)
}
