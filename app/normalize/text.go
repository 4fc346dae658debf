package normalize

import (
	stdhtml "html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern        = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
	lineSpacePattern  = regexp.MustCompile(`[ \t]+\n`)
)

// IsMarkup reports whether a raw payload should be treated as an HTML
// email body. Matches the container tags the supported vendor templates
// actually use.
func IsMarkup(raw string) bool {
	lowered := strings.ToLower(raw)
	return strings.Contains(lowered, "<html") ||
		strings.Contains(lowered, "<body") ||
		strings.Contains(lowered, "<div")
}

// Text converts a raw email body into the canonical line-oriented plain
// text every extractor sees: tags stripped, entities decoded,
// non-breaking spaces converted, carriage returns removed. Plain-text
// input passes through with the same cleanup. Never fails: on a parse
// problem it falls back to regex tag stripping.
func Text(raw string) string {
	if raw == "" {
		return ""
	}

	if !tagPattern.MatchString(raw) {
		return finish(stdhtml.UnescapeString(raw))
	}

	node, err := xhtml.Parse(strings.NewReader(raw))
	if err != nil || node == nil {
		return finish(stdhtml.UnescapeString(tagPattern.ReplaceAllString(raw, "\n")))
	}

	var b strings.Builder
	collectText(&b, node)
	return finish(b.String())
}

// collectText walks the DOM in document order and appends visible text,
// inserting newlines at block boundaries so label/value lines survive.
func collectText(b *strings.Builder, n *xhtml.Node) {
	if n.Type == xhtml.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "head", "iframe":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "div", "tr", "li", "table", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		case "td", "th":
			// Keep label and value cells on one line, separated.
			b.WriteString(" ")
		}
	}

	if n.Type == xhtml.TextNode {
		b.WriteString(strings.ReplaceAll(n.Data, "\t", " "))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == xhtml.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "tr", "table", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}

func finish(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = lineSpacePattern.ReplaceAllString(text, "\n")
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
