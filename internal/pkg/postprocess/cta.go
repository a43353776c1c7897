package postprocess

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Ordered call-to-action vocabulary. An interactive element whose visible
// text contains one of these is treated as a CTA candidate.
var ctaVocabulary = []string{
	"order",
	"buy",
	"book",
	"reserve",
	"get started",
	"contact",
	"call",
	"whatsapp",
	"donate",
	"subscribe",
	"enquire",
	"inquire",
	"hire",
	"quote",
	"sign up",
	"shop now",
}

// Targets considered no-op placeholders.
var placeholderTargets = map[string]bool{
	"":                   true,
	"#":                  true,
	"#!":                 true,
	"javascript:void(0)": true,
	"javascript:;":       true,
}

// RewireCTAs points every CTA candidate with a placeholder target at the
// single derived default target of the bundle, and converts non-form CTA
// buttons into anchors, since only anchors deep-link reliably in a static
// bundle. The stage is idempotent.
func (p *Pipeline) RewireCTAs(page string) (string, error) {
	doc, err := parse(page)
	if err != nil {
		return "", err
	}

	target := p.defaultCTATarget()

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		if !isCTACandidate(s) {
			return
		}
		href, _ := s.Attr("href")
		if placeholderTargets[strings.TrimSpace(href)] {
			s.SetAttr("href", target)
		}
	})

	doc.Find("button").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("form").Length() > 0 {
			return
		}
		if typ, _ := s.Attr("type"); strings.EqualFold(typ, "submit") {
			return
		}
		if !matchesVocabulary(s.Text()) {
			return
		}

		class, _ := s.Attr("class")
		if class == "" {
			class = "btn"
		}
		s.ReplaceWithHtml(fmt.Sprintf(`<a class="%s" href="%s">%s</a>`,
			html.EscapeString(class), target, html.EscapeString(strings.TrimSpace(s.Text()))))
	})

	return render(doc)
}

// defaultCTATarget derives the bundle-wide CTA target: WhatsApp deep link,
// then phone, then email, then the in-page contact anchor.
func (p *Pipeline) defaultCTATarget() string {
	if d := p.contact.WhatsAppDigits(); d != "" {
		return "https://wa.me/" + d
	}
	if d := p.contact.PhoneDigits(); d != "" {
		return "tel:" + d
	}
	if p.contact.Email != "" {
		return "mailto:" + p.contact.Email
	}
	return "#contact"
}

func isCTACandidate(s *goquery.Selection) bool {
	if matchesVocabulary(s.Text()) {
		return true
	}
	class, _ := s.Attr("class")
	return isButtonLike(class)
}

func matchesVocabulary(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range ctaVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// isButtonLike reports whether a class string marks an element as styled
// like a button.
func isButtonLike(class string) bool {
	for _, c := range strings.Fields(strings.ToLower(class)) {
		if c == "btn" || c == "button" || c == "cta" || strings.HasPrefix(c, "btn-") {
			return true
		}
	}
	return false
}
