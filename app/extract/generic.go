package extract

import (
	"strings"

	"github.com/brokerdesk/leadparse/app/lead"
	"github.com/brokerdesk/leadparse/app/normalize"
)

// Generic is the best-effort extractor for unrecognized sources: a label
// scan over the common field names, with bare-token fallbacks for email
// and phone. It never fails.
type Generic struct{}

var genericLabels = []string{
	"First Name",
	"Last Name",
	"Contact Name",
	"Full Name",
	"Name",
	"Contact Email",
	"Email",
	"E-mail",
	"Contact Phone",
	"Phone Number",
	"Phone",
	"Telephone",
	"Tel",
	"Contact Zip",
	"ZIP/Postal Code",
	"Postal Code",
	"Zip",
	"Address Line 1",
	"Address 1",
	"Address",
	"City",
	"State",
	"Country",
	"Originating Website",
	"Current Site Page URL",
	"Website",
	"Comments",
	"Message",
}

func (Generic) Source() lead.Source {
	return lead.SourceUnknown
}

func (e Generic) Extract(in *Input) (lead.Flat, error) {
	text := in.Text
	flat := lead.Flat{}

	flat.FirstName = fieldValue(text, "First Name", genericLabels)
	flat.LastName = fieldValue(text, "Last Name", genericLabels)
	if flat.FirstName == "" && flat.LastName == "" {
		flat.FirstName, flat.LastName = splitName(firstOf(text, genericLabels,
			"Contact Name", "Full Name", "Name"))
	}

	flat.Email = firstOf(text, genericLabels, "Contact Email", "Email", "E-mail")
	if flat.Email == "" {
		flat.Email = emailTokenPattern.FindString(text)
	}
	flat.Phone = normalize.Phone(firstOf(text, genericLabels,
		"Contact Phone", "Phone Number", "Phone", "Telephone", "Tel"))

	flat.ContactZip = firstOf(text, genericLabels,
		"Contact Zip", "ZIP/Postal Code", "Postal Code", "Zip")
	flat.City = fieldValue(text, "City", genericLabels)
	flat.State = fieldValue(text, "State", genericLabels)
	flat.Country = fieldValue(text, "Country", genericLabels)
	flat.Address = firstOf(text, genericLabels,
		"Address Line 1", "Address 1", "Address")

	if flat.City == "" && flat.State == "" && flat.ContactZip == "" && flat.Address != "" {
		parts := normalize.Address(flat.Address)
		flat.Address = parts.Line1
		flat.City = parts.City
		flat.State = parts.State
		flat.ContactZip = parts.Zip
		flat.Country = parts.Country
	}

	flat.OriginatingWebsite = fieldValue(text, "Originating Website", genericLabels)
	flat.CurrentSitePageURL = fieldValue(text, "Current Site Page URL", genericLabels)

	// Reference identifiers sometimes share a line with the listing
	// headline ("AB-1234 Established Coffee Shop").
	if m := refHeadlinePattern.FindStringSubmatch(text); m != nil {
		flat.RefID = m[1]
		flat.Headline = strings.TrimSpace(m[2])
	}

	comments := commentsBlock(text, "Comments")
	if comments == "" {
		comments = commentsBlock(text, "Message")
	}
	flat.Comments = normalize.Comments(comments)

	return flat, nil
}
