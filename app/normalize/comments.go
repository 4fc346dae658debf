package normalize

import (
	"regexp"
	"strings"
)

var (
	separatorPattern = regexp.MustCompile(`(?m)^\s*[-_]{3,}\s*$`)

	// Once a boilerplate phrase triggers, everything from it to the end
	// of the string is dropped.
	boilerplatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)\b(?:confidential(?:ity)? notice|this e-?mail.*?confidential|intended only for the named recipient|do not disseminate|if you have received this.*?in error).*`),
		regexp.MustCompile(`(?is)\bterms of use and disclaimers apply.*`),
		regexp.MustCompile(`(?is)\bbe aware! online banking fraud.*`),
		regexp.MustCompile(`(?is)\b(?:unsubscribe|click here to unsubscribe).*`),
	}

	trailingSpacePattern = regexp.MustCompile(`[ \t]+\n`)
	multiBlankPattern    = regexp.MustCompile(`\n{2,}`)
)

// Comments sanitizes a free-text message body: truncates at the first
// dashed/underscore separator line, strips disclaimer and footer
// boilerplate, and collapses blank lines.
func Comments(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	if loc := separatorPattern.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	for _, p := range boilerplatePatterns {
		text = p.ReplaceAllString(text, "")
	}

	text = strings.ReplaceAll(text, "\r", "")
	text = trailingSpacePattern.ReplaceAllString(text, "\n")
	text = multiBlankPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// ScrubNotDisclosed blanks placeholder values the listing platforms use
// for withheld fields.
func ScrubNotDisclosed(value string) string {
	if strings.Contains(strings.ToLower(value), "not disclosed") {
		return ""
	}
	return strings.TrimSpace(value)
}
