package extract

import (
	"github.com/brokerdesk/leadparse/app/lead"
)

// Extractor is the per-vendor extraction strategy. Implementations
// return empty fields for missing labels; an error means the input could
// not be parsed at all and the dispatcher should retry on the text
// projection.
type Extractor interface {
	Source() lead.Source
	Extract(in *Input) (lead.Flat, error)
}

// Registry is the strategy table mapping a classified source to its
// extractor. Built once at startup.
type Registry map[lead.Source]Extractor

func NewRegistry() Registry {
	registry := Registry{}
	for _, e := range []Extractor{
		BizBuySell{},
		BusinessesForSale{},
		MurphyBusiness{},
		BusinessBroker{},
	} {
		registry[e.Source()] = e
	}
	return registry
}
