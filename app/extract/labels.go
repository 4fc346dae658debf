package extract

import (
	"regexp"
	"strings"
	"sync"
)

// Label and phrase matchers are built from compiled-in constants, so
// the cache only ever grows to a fixed size and is safe for concurrent
// reads.
var labelRegexes sync.Map // pattern -> *regexp.Regexp

var (
	separatorLinePattern = regexp.MustCompile(`(?m)^\s*[-_]{3,}\s*$`)
	refHeadlinePattern   = regexp.MustCompile(`(?m)^\s*([A-Za-z0-9]+-\d+)\s+(\S*[A-Za-z].*)$`)
	emailTokenPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// Footer phrases that bound a free-text comments block in addition to
// the dashed separator line.
var boilerplateStops = []string{
	"confidentiality notice",
	"confidential notice",
	"terms of use",
	"unsubscribe",
	"be aware! online banking fraud",
}

// labelRegex builds the matcher for a "Label:" occurrence:
// case-insensitive, tolerant of line breaks inside the label (vendors
// wrap labels across lines) and of whitespace around the colon. A
// trailing "?" on the label is treated as optional.
func labelRegex(label string) *regexp.Regexp {
	optional := ""
	if strings.HasSuffix(label, "?") {
		label = strings.TrimSuffix(label, "?")
		optional = `\??`
	}
	words := strings.Fields(regexp.QuoteMeta(label))
	pattern := `(?i)\b` + strings.Join(words, `\s+`) + optional + `\s*:[ \t]*`

	if cached, ok := labelRegexes.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	labelRegexes.Store(pattern, re)
	return re
}

// fieldValue captures the value for a label: everything between the end
// of the label's colon and the start of the next recognized label
// occurrence (scanned globally, not just the next line), or end of text.
// A missing label yields the empty string, not an error.
func fieldValue(text, label string, known []string) string {
	m := labelRegex(label).FindStringIndex(text)
	if m == nil {
		return ""
	}
	rest := text[m[1]:]

	end := len(rest)
	for _, other := range known {
		if lm := labelRegex(other).FindStringIndex(rest); lm != nil && lm[0] < end {
			end = lm[0]
		}
	}
	return strings.TrimSpace(rest[:end])
}

// firstOf tries each label spelling in priority order and returns the
// first non-empty value.
func firstOf(text string, known []string, labels ...string) string {
	for _, label := range labels {
		if v := fieldValue(text, label, known); v != "" {
			return v
		}
	}
	return ""
}

// phraseRegex matches a literal phrase case-insensitively. Matching on
// the original string keeps byte offsets valid: lowering the haystack
// first would shift them for runes whose case mapping changes length
// (U+0130, U+023A).
func phraseRegex(phrase string) *regexp.Regexp {
	pattern := `(?i)` + regexp.QuoteMeta(phrase)
	if cached, ok := labelRegexes.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	labelRegexes.Store(pattern, re)
	return re
}

// between returns the text between a literal start phrase and the
// earliest of the stop phrases (or end of text). Matching is
// case-insensitive.
func between(text, start string, stops ...string) string {
	m := phraseRegex(start).FindStringIndex(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(cutAtPhrase(text[m[1]:], stops))
}

// cutAtPhrase truncates text at the earliest case-insensitive occurrence
// of any stop phrase.
func cutAtPhrase(text string, stops []string) string {
	end := len(text)
	for _, stop := range stops {
		if m := phraseRegex(stop).FindStringIndex(text); m != nil && m[0] < end {
			end = m[0]
		}
	}
	return text[:end]
}

// commentsBlock captures a free-text message body following a comments
// label, bounded by the first dashed/underscore separator line, a known
// footer phrase, any vendor-specific stop, or end of text.
func commentsBlock(text, label string, extraStops ...string) string {
	m := labelRegex(label).FindStringIndex(text)
	if m == nil {
		return ""
	}
	rest := text[m[1]:]

	if loc := separatorLinePattern.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	rest = cutAtPhrase(rest, boilerplateStops)
	rest = cutAtPhrase(rest, extraStops)
	return strings.TrimSpace(rest)
}

// splitName splits a full name on the first space: everything after it
// belongs to the last name.
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if f, l, ok := strings.Cut(full, " "); ok {
		return f, strings.TrimSpace(l)
	}
	return full, ""
}

// firstLine trims a multi-line capture down to its first line.
func firstLine(value string) string {
	if i := strings.IndexByte(value, '\n'); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}
