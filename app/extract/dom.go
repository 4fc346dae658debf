package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// following returns the next node in document order, descending into
// children first.
func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// nextElementText finds the first element with the given tag after start
// in document order and returns its trimmed text content.
func nextElementText(start *html.Node, tag string) string {
	for n := following(start); n != nil; n = following(n) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
			return strings.TrimSpace(textContent(n))
		}
	}
	return ""
}

// nextTextNode finds the first non-blank text node after start in
// document order.
func nextTextNode(start *html.Node) string {
	for n := following(start); n != nil; n = following(n) {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			return strings.TrimSpace(n.Data)
		}
	}
	return ""
}

// findTextNode locates the first text node containing the given
// substring.
func findTextNode(root *html.Node, substr string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.TextNode && strings.Contains(n.Data, substr) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// mailtoHref returns the address of the first mailto: anchor, without
// any query suffix.
func mailtoHref(doc *goquery.Document) string {
	href, ok := doc.Find(`a[href^="mailto:"]`).Attr("href")
	if !ok {
		return ""
	}
	addr := strings.TrimPrefix(href, "mailto:")
	if i := strings.IndexByte(addr, '?'); i >= 0 {
		addr = addr[:i]
	}
	return strings.TrimSpace(addr)
}

// telHref returns the number of the first tel: anchor.
func telHref(doc *goquery.Document) string {
	href, ok := doc.Find(`a[href^="tel:"]`).Attr("href")
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
}
