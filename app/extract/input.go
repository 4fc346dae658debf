package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brokerdesk/leadparse/app/normalize"
)

// Input carries the per-request projections of one email body. The DOM
// is built lazily since text-template vendors never need it.
type Input struct {
	Raw  string
	Text string

	markup   bool
	doc      *goquery.Document
	docErr   error
	docBuilt bool
}

func NewInput(raw string) *Input {
	return &Input{
		Raw:    raw,
		Text:   normalize.Text(raw),
		markup: normalize.IsMarkup(raw),
	}
}

func (in *Input) IsMarkup() bool {
	return in.markup
}

// Doc parses the raw body as a DOM, once.
func (in *Input) Doc() (*goquery.Document, error) {
	if !in.docBuilt {
		in.doc, in.docErr = goquery.NewDocumentFromReader(strings.NewReader(in.Raw))
		in.docBuilt = true
	}
	return in.doc, in.docErr
}
