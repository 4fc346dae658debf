package normalize

import (
	"regexp"
	"strings"
)

// AddressParts is the decomposition of a single free-text address line.
type AddressParts struct {
	Line1   string
	City    string
	State   string
	Zip     string
	Country string
}

var (
	countryPattern = regexp.MustCompile(`(?i)[,;\s]+(U\.?S\.?A\.?|U\.?S\.?|United States(?: of America)?|U\.?K\.?|United Kingdom|Great Britain|England|Scotland|Wales|Canada)\.?\s*$`)

	ukPostcodePattern = regexp.MustCompile(`(?i)\b([A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2})\s*$`)
	usZipPattern      = regexp.MustCompile(`(?i)(?:\b([A-Z]{2})[,\s]+)?(\d{5}(?:-\d{4})?)\s*$`)
	caPostcodePattern = regexp.MustCompile(`(?i)\b([A-Z]\d[A-Z]\s*\d[A-Z]\d)\s*$`)

	segmentPattern = regexp.MustCompile(`[,;]`)
)

// Address decomposes one free-text address line into line1, city, state,
// zip and country. Postal patterns are tried in order: UK postcode, US
// ZIP (with an optional two-letter state immediately preceding it),
// Canadian postal code. When nothing matches, the whole input comes back
// as line1 with the other parts empty.
func Address(line string) AddressParts {
	line = strings.TrimSpace(line)
	if line == "" {
		return AddressParts{}
	}

	parts := AddressParts{}

	if m := countryPattern.FindStringSubmatchIndex(line); m != nil {
		parts.Country = strings.TrimSpace(line[m[2]:m[3]])
		line = strings.TrimSpace(line[:m[0]])
	}

	if m := ukPostcodePattern.FindStringSubmatchIndex(line); m != nil {
		parts.Zip = strings.TrimSpace(line[m[2]:m[3]])
		parts.Line1, parts.City = splitLineCity(line[:m[0]])
		return parts
	}

	if m := usZipPattern.FindStringSubmatchIndex(line); m != nil {
		if m[2] >= 0 {
			parts.State = line[m[2]:m[3]]
		}
		parts.Zip = line[m[4]:m[5]]
		parts.Line1, parts.City = splitLineCity(line[:m[0]])
		return parts
	}

	if m := caPostcodePattern.FindStringSubmatchIndex(line); m != nil {
		parts.Zip = strings.TrimSpace(line[m[2]:m[3]])
		parts.Line1, parts.City = splitLineCity(line[:m[0]])
		return parts
	}

	parts.Line1 = line
	return parts
}

// splitLineCity treats the last comma/semicolon segment before the
// postal token as the city and everything before it as line1.
func splitLineCity(prefix string) (line1, city string) {
	segments := []string{}
	for _, seg := range segmentPattern.Split(prefix, -1) {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	switch len(segments) {
	case 0:
		return "", ""
	case 1:
		return "", segments[0]
	default:
		return strings.Join(segments[:len(segments)-1], ", "), segments[len(segments)-1]
	}
}
