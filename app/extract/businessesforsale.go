package extract

import (
	"regexp"
	"strings"

	"github.com/brokerdesk/leadparse/app/lead"
	"github.com/brokerdesk/leadparse/app/normalize"
)

// BusinessesForSale parses businessesforsale.com notification emails.
// The template is effectively plain text even when wrapped in markup, so
// extraction always runs over the text projection.
type BusinessesForSale struct{}

var bfsLabels = []string{
	"Name",
	"Email",
	"Tel",
}

// "Your listing ref:<digits> <headline>" followed by the listing URL on
// the next line.
var bfsListingPattern = regexp.MustCompile(`Your listing ref:\s*(\d+)[ \t]+(.+)\n\s*(https?://\S+)`)

func (BusinessesForSale) Source() lead.Source {
	return lead.SourceBusinessesForSale
}

func (e BusinessesForSale) Extract(in *Input) (lead.Flat, error) {
	text := in.Text
	flat := lead.Flat{}

	if m := bfsListingPattern.FindStringSubmatch(text); m != nil {
		flat.RefID = strings.TrimSpace(m[1])
		flat.Headline = strings.TrimSpace(m[2])
		flat.ListingURL = strings.TrimSpace(m[3])
	}

	flat.FirstName, flat.LastName = splitName(fieldValue(text, "Name", bfsLabels))
	flat.Email = fieldValue(text, "Email", bfsLabels)
	flat.Phone = normalize.Phone(fieldValue(text, "Tel", bfsLabels))

	flat.Comments = normalize.Comments(between(text,
		"has received the following message:", "Name:"))

	return flat, nil
}
