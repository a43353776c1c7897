package postprocess

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/futig/sitegen-backend/internal/pkg/markup"
)

// WireContacts rewrites tel:, wa.me and mailto: anchor targets to the exact
// extracted values and replaces the contact section's content block with the
// canonical rendering of the available fields. Pages without contact data
// pass through unchanged.
func (p *Pipeline) WireContacts(page string) (string, error) {
	if !p.contact.HasAny() {
		return page, nil
	}

	doc, err := parse(page)
	if err != nil {
		return "", err
	}

	phoneDigits := p.contact.PhoneDigits()
	waDigits := p.contact.WhatsAppDigits()

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)

		switch {
		case strings.HasPrefix(lower, "tel:") && phoneDigits != "":
			s.SetAttr("href", "tel:"+phoneDigits)
		case strings.Contains(lower, "wa.me") && waDigits != "":
			s.SetAttr("href", "https://wa.me/"+waDigits)
		case strings.HasPrefix(lower, "mailto:") && p.contact.Email != "":
			s.SetAttr("href", "mailto:"+p.contact.Email)
		}
	})

	p.rewriteContactSection(doc)

	return render(doc)
}

// rewriteContactSection replaces the body of the contact section with the
// canonical contact block, keeping the section's leading heading.
func (p *Pipeline) rewriteContactSection(doc *goquery.Document) {
	section := doc.Find("#contact").First()
	if section.Length() == 0 {
		section = doc.Find("section.contact").First()
	}
	if section.Length() == 0 {
		return
	}

	heading := "<h2>Contact</h2>"
	if h := section.Find("h1,h2,h3").First(); h.Length() > 0 {
		if outer, err := goquery.OuterHtml(h); err == nil {
			heading = outer
		}
	}

	section.SetHtml(heading + "\n" + markup.ContactList(p.contact))
}
