package extract

import (
	"cmp"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brokerdesk/leadparse/app/lead"
	"github.com/brokerdesk/leadparse/app/normalize"
)

// BizBuySell parses bizbuysell.com notification emails. HTML bodies use
// a bold-label/span-value layout; plain-text bodies use "Label: value"
// lines. The template carries no public listing URL.
type BizBuySell struct{}

var bizBuySellLabels = []string{
	"Contact Name",
	"Contact Email",
	"Contact Phone",
	"Contact Zip",
	"Able to Invest",
	"Purchase Within",
	"Comments",
	"Ref ID",
	"Listing ID",
}

var refIDInlinePattern = regexp.MustCompile(`Ref ID:\s*([A-Za-z0-9_-]+)`)
var refIDTokenPattern = regexp.MustCompile(`[A-Za-z0-9_-]+`)

func (BizBuySell) Source() lead.Source {
	return lead.SourceBizBuySell
}

func (e BizBuySell) Extract(in *Input) (lead.Flat, error) {
	if in.IsMarkup() {
		doc, err := in.Doc()
		if err != nil {
			return lead.Flat{}, err
		}
		return e.extractDOM(doc), nil
	}
	return e.extractText(in.Text), nil
}

func (e BizBuySell) extractDOM(doc *goquery.Document) lead.Flat {
	flat := lead.Flat{}

	// Headline is the first substantial bold run that is not the "From:"
	// label.
	doc.Find("b").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if len(text) > 10 && !strings.EqualFold(text, "from:") {
			flat.Headline = text
			return false
		}
		return true
	})

	flat.FirstName, flat.LastName = splitName(labeledSpan(doc, "Contact Name"))
	flat.Email = cmp.Or(mailtoHref(doc), labeledSpan(doc, "Contact Email"))
	flat.Phone = normalize.Phone(cmp.Or(telHref(doc), labeledSpan(doc, "Contact Phone")))

	flat.RefID = e.refID(doc)
	flat.ListingID = e.listingID(doc)

	flat.ContactZip = labeledSpan(doc, "Contact Zip")
	flat.InvestmentAmount = labeledSpan(doc, "Able to Invest")
	flat.PurchaseTimeline = labeledSpan(doc, "Purchase Within")
	flat.Comments = normalize.Comments(labeledSpan(doc, "Comments"))

	return flat
}

// refID reads the token after the "Ref ID:" text node, either inline or
// in the next text node.
func (e BizBuySell) refID(doc *goquery.Document) string {
	for _, root := range doc.Nodes {
		node := findTextNode(root, "Ref ID")
		if node == nil {
			continue
		}
		if m := refIDInlinePattern.FindStringSubmatch(node.Data); m != nil {
			return m[1]
		}
		if next := nextTextNode(node); next != "" {
			return refIDTokenPattern.FindString(next)
		}
	}
	return ""
}

// listingID reads the anchor text following the "Listing ID:" span.
func (e BizBuySell) listingID(doc *goquery.Document) string {
	var id string
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), "Listing ID:") {
			return true
		}
		if len(s.Nodes) > 0 {
			id = nextElementText(s.Nodes[0], "a")
		}
		return false
	})
	return id
}

func (e BizBuySell) extractText(text string) lead.Flat {
	flat := lead.Flat{}

	flat.FirstName, flat.LastName = splitName(fieldValue(text, "Contact Name", bizBuySellLabels))
	flat.Email = fieldValue(text, "Contact Email", bizBuySellLabels)
	flat.Phone = normalize.Phone(fieldValue(text, "Contact Phone", bizBuySellLabels))
	flat.ContactZip = fieldValue(text, "Contact Zip", bizBuySellLabels)
	flat.InvestmentAmount = fieldValue(text, "Able to Invest", bizBuySellLabels)
	flat.PurchaseTimeline = fieldValue(text, "Purchase Within", bizBuySellLabels)

	flat.RefID = firstLine(fieldValue(text, "Ref ID", bizBuySellLabels))
	flat.ListingID = fieldValue(text, "Listing ID", bizBuySellLabels)
	flat.Headline = between(text, "regarding your listing:", "Listing ID")

	flat.Comments = normalize.Comments(commentsBlock(text, "Comments",
		"You can reply directly", "We take our lead quality", "Thank you,"))

	return flat
}

// labeledSpan resolves the bold-label/span-value pairs of the HTML
// template: find the <b> containing the label, take the text of the next
// <span> in document order.
func labeledSpan(doc *goquery.Document, label string) string {
	var value string
	doc.Find("b").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(s.Text()), strings.ToLower(label)) {
			return true
		}
		if len(s.Nodes) > 0 {
			value = nextElementText(s.Nodes[0], "span")
		}
		return false
	})
	return value
}
