package extract

import (
	"testing"
)

const murphyText = `New contact form submission from murphybusiness.com

Name: Sam Seller
Email: sam@example.com
Phone: 555-444-8899
ZIP/Postal Code: 33101
Services Interested In: Business Valuation
How did you hear about us?: Google search
Best Time to Contact: Mornings`

func TestMurphyBusinessExtract(t *testing.T) {
	flat, err := MurphyBusiness{}.Extract(NewInput(murphyText))
	if err != nil {
		t.Fatal(err)
	}

	if flat.FirstName != "Sam" || flat.LastName != "Seller" {
		t.Errorf("Unexpected name: %q %q", flat.FirstName, flat.LastName)
	}
	if flat.Email != "sam@example.com" {
		t.Errorf("Unexpected email: %q", flat.Email)
	}
	if flat.Phone != "+15554448899" {
		t.Errorf("Unexpected phone: %q", flat.Phone)
	}
	if flat.ContactZip != "33101" {
		t.Errorf("Unexpected zip: %q", flat.ContactZip)
	}
	if flat.ServicesInterestedIn != "Business Valuation" {
		t.Errorf("Unexpected services: %q", flat.ServicesInterestedIn)
	}
	if flat.HeardAbout != "Google search" {
		t.Errorf("Unexpected heard about: %q", flat.HeardAbout)
	}
	if flat.BestTimeToContact != "Mornings" {
		t.Errorf("Unexpected best time: %q", flat.BestTimeToContact)
	}
}

func TestMurphyBusinessHTMLVariant(t *testing.T) {
	html := `<html><body>
<p>Murphy Business contact request</p>
<p>Name: Pat Jones</p>
<p>Email: pat@example.com</p>
<p>Phone: (555) 777-1122</p>
<p>ZIP/Postal Code: 60601</p>
<p>Services Interested In: Selling my business</p>
</body></html>`

	flat, err := MurphyBusiness{}.Extract(NewInput(html))
	if err != nil {
		t.Fatal(err)
	}

	if flat.FirstName != "Pat" || flat.LastName != "Jones" {
		t.Errorf("Unexpected name: %q %q", flat.FirstName, flat.LastName)
	}
	if flat.Phone != "+15557771122" {
		t.Errorf("Unexpected phone: %q", flat.Phone)
	}
	if flat.ContactZip != "60601" {
		t.Errorf("Unexpected zip: %q", flat.ContactZip)
	}
	if flat.ServicesInterestedIn != "Selling my business" {
		t.Errorf("Unexpected services: %q", flat.ServicesInterestedIn)
	}
}
