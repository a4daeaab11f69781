package normalizer

import (
	"regexp"
	"strconv"
	"strings"
)

// AtLarge is the district designation for a state with a single seat.
const AtLarge = "at-large"

// districtNumberPattern accepts "4", "04" and already-suffixed "4th".
var districtNumberPattern = regexp.MustCompile(`(?i)^(\d{1,3})(st|nd|rd|th)?$`)

// atLargeSpellings are normalized before the district string is tokenized.
var atLargeSpellings = strings.NewReplacer("at large", AtLarge, "At large", AtLarge, "At Large", AtLarge, "AT LARGE", AtLarge)

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st and so on.
func Ordinal(n int) string {
	suffix := "th"

	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// parseDistrict resolves a single district designator token. afterState
// reports whether the token followed a state name, which makes "AL" an
// at-large marker rather than a state abbreviation.
func parseDistrict(tok string, afterState bool) (string, bool) {
	switch lower := strings.ToLower(tok); {
	case lower == AtLarge || lower == "atlarge":
		return AtLarge, true
	case lower == "al" && afterState:
		return AtLarge, true
	}

	m := districtNumberPattern.FindStringSubmatch(tok)
	if m == nil {
		return "", false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}

	// FEC files code at-large seats as district 00
	if n == 0 {
		return AtLarge, true
	}

	return Ordinal(n), true
}

// NormalizeLocation resolves a state and district pair into a full state
// name and an ordinal district. A state name embedded in the district
// ("New York 2") takes precedence over the state argument. Parts that cannot
// be resolved come back empty; the function never fails.
func NormalizeLocation(state, district string) (string, string) {
	tokens := strings.Fields(atLargeSpellings.Replace(district))
	if len(tokens) == 0 {
		name, _ := LookupState(state)

		return name, ""
	}

	last := tokens[len(tokens)-1]
	prefix := strings.Join(tokens[:len(tokens)-1], " ")

	if ordinal, ok := parseDistrict(last, prefix != ""); ok {
		if prefix != "" {
			// an unknown embedded state still wins over the argument
			name, _ := LookupState(prefix)

			return name, ordinal
		}

		name, _ := LookupState(state)

		return name, ordinal
	}

	if name, ok := LookupState(strings.Join(tokens, " ")); ok {
		return name, ""
	}

	name, _ := LookupState(state)

	return name, ""
}
