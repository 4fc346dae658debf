package lead

// Source identifies the listing platform a notification email came from.
type Source string

const (
	SourceBizBuySell        Source = "bizbuysell"
	SourceBusinessesForSale Source = "businessesforsale"
	SourceMurphyBusiness    Source = "murphybusiness"
	SourceBusinessBroker    Source = "businessbroker"
	SourceUnknown           Source = "unknown"
)

// Flat is the per-vendor extraction result. Every semantic key the
// extractors know about is a field here, so a zero Flat already satisfies
// the "all keys present, empty string" contract.
type Flat struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	BestTimeToContact string

	Address    string
	City       string
	State      string
	ContactZip string
	Country    string

	Headline           string
	RefID              string
	ListingID          string
	ListingURL         string
	OriginatingWebsite string
	CurrentSitePageURL string

	PurchaseTimeline     string
	InvestmentAmount     string
	ServicesInterestedIn string
	HeardAbout           string

	Comments string
}

// Lead is the canonical nested record returned to callers. All leaf
// values are strings and all groups are always present, regardless of
// source or failure mode.
type Lead struct {
	Source     string  `json:"source"`
	Contact    Contact `json:"contact"`
	Address    Address `json:"address"`
	Listing    Listing `json:"listing"`
	Details    Details `json:"details"`
	Comments   string  `json:"comments"`
	ErrorDebug string  `json:"error_debug,omitempty"`
}

type Contact struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	BestTimeToContact string `json:"best_time_to_contact"`
}

type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Listing struct {
	Headline           string `json:"headline"`
	RefID              string `json:"ref_id"`
	ListingID          string `json:"listing_id"`
	ListingURL         string `json:"listing_url"`
	OriginatingWebsite string `json:"originating_website"`
}

type Details struct {
	PurchaseTimeline     string `json:"purchase_timeline"`
	InvestmentAmount     string `json:"investment_amount"`
	ServicesInterestedIn string `json:"services_interested_in"`
	HeardAbout           string `json:"heard_about"`
}
