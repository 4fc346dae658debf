package extract

import (
	"testing"
)

const businessBrokerText = `New lead from BusinessBroker.net

Listing Header: Established HVAC Service Company
BusinessBroker.net Listing Number: 556677
Your Internal Listing Number: HV-88
First Name: Dana
Last Name: Investor
Email: dana@example.com
Phone: 555-333-2211
Address: 42 Elm Street
City: Denver
State: CO
Zip: 80202
Country: USA
Comments: What is the asking price and cash flow?
------------
This e-mail is confidential and intended only for the named recipient.`

func TestBusinessBrokerExtract(t *testing.T) {
	flat, err := BusinessBroker{}.Extract(NewInput(businessBrokerText))
	if err != nil {
		t.Fatal(err)
	}

	if flat.Headline != "Established HVAC Service Company" {
		t.Errorf("Unexpected headline: %q", flat.Headline)
	}
	if flat.ListingID != "556677" {
		t.Errorf("Unexpected listing id: %q", flat.ListingID)
	}
	if flat.RefID != "HV-88" {
		t.Errorf("Unexpected ref id: %q", flat.RefID)
	}
	if flat.FirstName != "Dana" || flat.LastName != "Investor" {
		t.Errorf("Unexpected name: %q %q", flat.FirstName, flat.LastName)
	}
	if flat.Phone != "+15553332211" {
		t.Errorf("Unexpected phone: %q", flat.Phone)
	}
	if flat.Address != "42 Elm Street" {
		t.Errorf("Unexpected address: %q", flat.Address)
	}
	if flat.City != "Denver" || flat.State != "CO" || flat.ContactZip != "80202" {
		t.Errorf("Unexpected city/state/zip: %q %q %q", flat.City, flat.State, flat.ContactZip)
	}
	if flat.Country != "USA" {
		t.Errorf("Unexpected country: %q", flat.Country)
	}
	if flat.Comments != "What is the asking price and cash flow?" {
		t.Errorf("Expected comments trimmed at separator, got %q", flat.Comments)
	}
}

func TestBusinessBrokerAddressDecomposition(t *testing.T) {
	text := `Lead from businessbroker.net

First Name: Lee
Last Name: Chan
Email: lee@example.com
Address: 9 Harbor Way, Oakland, CA 94607`

	flat, err := BusinessBroker{}.Extract(NewInput(text))
	if err != nil {
		t.Fatal(err)
	}

	if flat.Address != "9 Harbor Way" {
		t.Errorf("Unexpected line1: %q", flat.Address)
	}
	if flat.City != "Oakland" {
		t.Errorf("Unexpected city: %q", flat.City)
	}
	if flat.State != "CA" {
		t.Errorf("Unexpected state: %q", flat.State)
	}
	if flat.ContactZip != "94607" {
		t.Errorf("Unexpected zip: %q", flat.ContactZip)
	}
}

func TestBusinessBrokerAlternateAddressLabel(t *testing.T) {
	text := `businessbroker.net lead

First Name: Kim
Address Line 1: 77 Pine Road
City: Boise
State: ID
Zip: 83702`

	flat, err := BusinessBroker{}.Extract(NewInput(text))
	if err != nil {
		t.Fatal(err)
	}

	if flat.Address != "77 Pine Road" {
		t.Errorf("Expected alternate address label matched, got %q", flat.Address)
	}
	if flat.City != "Boise" {
		t.Errorf("Unexpected city: %q", flat.City)
	}
}
