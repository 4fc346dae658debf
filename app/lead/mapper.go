package lead

import (
	"cmp"

	"github.com/brokerdesk/leadparse/app/normalize"
)

// Map assembles a vendor's flat extraction into the canonical nested
// record. The "not disclosed" scrub is applied uniformly here so no
// extractor has to remember it. A non-empty debug note is attached as
// error_debug; successful extractions carry none.
func Map(source Source, flat Flat, debug string) Lead {
	s := normalize.ScrubNotDisclosed

	listingURL := s(flat.ListingURL)
	// BizBuySell notification templates carry no reliable public listing
	// URL, so the canonical slot stays empty instead of being backfilled
	// from the originating-website extras.
	if listingURL == "" && source != SourceBizBuySell {
		listingURL = cmp.Or(s(flat.OriginatingWebsite), s(flat.CurrentSitePageURL))
	}

	return Lead{
		Source: string(source),
		Contact: Contact{
			FirstName:         s(flat.FirstName),
			LastName:          s(flat.LastName),
			Email:             s(flat.Email),
			Phone:             s(flat.Phone),
			BestTimeToContact: s(flat.BestTimeToContact),
		},
		Address: Address{
			Line1:   s(flat.Address),
			City:    s(flat.City),
			State:   s(flat.State),
			Zip:     s(flat.ContactZip),
			Country: s(flat.Country),
		},
		Listing: Listing{
			Headline:           s(flat.Headline),
			RefID:              s(flat.RefID),
			ListingID:          s(flat.ListingID),
			ListingURL:         listingURL,
			OriginatingWebsite: s(flat.OriginatingWebsite),
		},
		Details: Details{
			PurchaseTimeline:     s(flat.PurchaseTimeline),
			InvestmentAmount:     s(flat.InvestmentAmount),
			ServicesInterestedIn: s(flat.ServicesInterestedIn),
			HeardAbout:           s(flat.HeardAbout),
		},
		Comments:   s(flat.Comments),
		ErrorDebug: debug,
	}
}
