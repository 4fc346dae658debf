package extract

import (
	"strings"

	"github.com/brokerdesk/leadparse/app/lead"
)

type signature struct {
	source lead.Source
	marker string
}

// Ordering matters: narrow vendor domains are tested before the broad
// phrases that could show up in more than one template. First match
// wins.
var signatures = []signature{
	{lead.SourceBusinessesForSale, "businessesforsale.com"},
	{lead.SourceBusinessBroker, "businessbroker.net"},
	{lead.SourceMurphyBusiness, "murphybusiness.com"},
	{lead.SourceBizBuySell, "bizbuysell"},
	{lead.SourceBusinessesForSale, "businesses for sale"},
	{lead.SourceMurphyBusiness, "murphy business"},
}

// Classify selects the extraction strategy for an email body. Pure and
// idempotent; returns SourceUnknown when no vendor signature matches.
func Classify(text string) lead.Source {
	lowered := strings.ToLower(text)
	for _, sig := range signatures {
		if strings.Contains(lowered, sig.marker) {
			return sig.source
		}
	}
	return lead.SourceUnknown
}
