package extract

import (
	"github.com/brokerdesk/leadparse/app/lead"
	"github.com/brokerdesk/leadparse/app/normalize"
)

// MurphyBusiness parses murphybusiness.com contact-form emails. HTML and
// plain-text variants share the same label set, so both run over the
// text projection.
type MurphyBusiness struct{}

var murphyLabels = []string{
	"Name",
	"Email",
	"Phone",
	"ZIP/Postal Code",
	"Postal Code",
	"Services Interested In",
	"How did you hear about us?",
	"Best Time to Contact",
	"Comments",
}

func (MurphyBusiness) Source() lead.Source {
	return lead.SourceMurphyBusiness
}

func (e MurphyBusiness) Extract(in *Input) (lead.Flat, error) {
	text := in.Text
	flat := lead.Flat{}

	flat.FirstName, flat.LastName = splitName(fieldValue(text, "Name", murphyLabels))
	flat.Email = fieldValue(text, "Email", murphyLabels)
	flat.Phone = normalize.Phone(fieldValue(text, "Phone", murphyLabels))
	flat.ContactZip = firstOf(text, murphyLabels,
		"ZIP/Postal Code", "Zip", "Postal Code")
	flat.BestTimeToContact = fieldValue(text, "Best Time to Contact", murphyLabels)

	flat.ServicesInterestedIn = fieldValue(text, "Services Interested In", murphyLabels)
	flat.HeardAbout = fieldValue(text, "How did you hear about us?", murphyLabels)

	flat.Comments = normalize.Comments(commentsBlock(text, "Comments"))

	return flat, nil
}
