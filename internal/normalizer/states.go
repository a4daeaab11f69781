package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stateNames maps postal abbreviations to full names. Territories with a
// non-voting House delegate are included alongside the states.
var stateNames = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DE": "Delaware",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
	"DC": "District of Columbia",
	"AS": "American Samoa",
	"GU": "Guam",
	"MP": "Northern Mariana Islands",
	"PR": "Puerto Rico",
	"VI": "U.S. Virgin Islands",
}

// stateByFolded maps folded full names (and a few common variants) to
// canonical names.
var stateByFolded = buildStateIndex()

// stateAbbrevs maps canonical names back to abbreviations.
var stateAbbrevs = func() map[string]string {
	m := make(map[string]string, len(stateNames))
	for abbrev, name := range stateNames {
		m[name] = abbrev
	}

	return m
}()

func buildStateIndex() map[string]string {
	index := make(map[string]string, len(stateNames)+4)
	for _, name := range stateNames {
		index[Fold(name)] = name
	}

	index[Fold("Hawai'i")] = "Hawaii"
	index[Fold("Washington, D.C.")] = "District of Columbia"
	index[Fold("Washington D.C.")] = "District of Columbia"
	index[Fold("US Virgin Islands")] = "U.S. Virgin Islands"
	index[Fold("Virgin Islands")] = "U.S. Virgin Islands"

	return index
}

// Fold lower-cases, strips diacritics and collapses whitespace so that
// loosely written names and places compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// LookupState resolves a postal abbreviation or a full state name to the
// canonical full name.
func LookupState(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if len(s) == 2 {
		if name, ok := stateNames[strings.ToUpper(s)]; ok {
			return name, true
		}
	}

	name, ok := stateByFolded[Fold(s)]

	return name, ok
}

// StateAbbrev returns the postal abbreviation of a canonical state name.
func StateAbbrev(name string) (string, bool) {
	abbrev, ok := stateAbbrevs[name]

	return abbrev, ok
}
