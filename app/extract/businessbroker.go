package extract

import (
	"github.com/brokerdesk/leadparse/app/lead"
	"github.com/brokerdesk/leadparse/app/normalize"
)

// BusinessBroker parses businessbroker.net notification emails, the only
// vendor that ships full postal-address fields. When the template omits
// the city/state/zip labels but carries a single free-text address line,
// the address decomposer fills in the missing parts.
type BusinessBroker struct{}

var businessBrokerLabels = []string{
	"Listing Header",
	"BusinessBroker.net Listing Number",
	"Your Internal Listing Number",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Zip",
	"Zip/Postal Code",
	"City",
	"State",
	"Country",
	"Address",
	"Address 1",
	"Address Line 1",
	"Comments",
}

func (BusinessBroker) Source() lead.Source {
	return lead.SourceBusinessBroker
}

func (e BusinessBroker) Extract(in *Input) (lead.Flat, error) {
	text := in.Text
	flat := lead.Flat{}

	flat.Headline = fieldValue(text, "Listing Header", businessBrokerLabels)
	flat.ListingID = fieldValue(text, "BusinessBroker.net Listing Number", businessBrokerLabels)
	flat.RefID = fieldValue(text, "Your Internal Listing Number", businessBrokerLabels)

	flat.FirstName = fieldValue(text, "First Name", businessBrokerLabels)
	flat.LastName = fieldValue(text, "Last Name", businessBrokerLabels)
	flat.Email = fieldValue(text, "Email", businessBrokerLabels)
	flat.Phone = normalize.Phone(fieldValue(text, "Phone", businessBrokerLabels))

	flat.ContactZip = firstOf(text, businessBrokerLabels,
		"Zip", "Zip/Postal Code")
	flat.City = fieldValue(text, "City", businessBrokerLabels)
	flat.State = fieldValue(text, "State", businessBrokerLabels)
	flat.Country = fieldValue(text, "Country", businessBrokerLabels)
	flat.Address = firstOf(text, businessBrokerLabels,
		"Address", "Address 1", "Address Line 1")

	if flat.City == "" && flat.State == "" && flat.ContactZip == "" && flat.Address != "" {
		parts := normalize.Address(flat.Address)
		flat.Address = parts.Line1
		flat.City = parts.City
		flat.State = parts.State
		flat.ContactZip = parts.Zip
		if flat.Country == "" {
			flat.Country = parts.Country
		}
	}

	flat.Comments = normalize.Comments(commentsBlock(text, "Comments"))

	return flat, nil
}
