package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/futig/sitegen-backend/internal/entity"
)

// BuildBusinessPage renders structured page content into body-level markup.
// The builder, not the model, derives contact links, so real contact data
// from the description is never dropped or reformatted.
func BuildBusinessPage(content *entity.PageContent, info entity.ContactInfo) string {
	var b strings.Builder

	b.WriteString(`<main>` + "\n")
	for _, s := range content.Sections {
		switch s.Kind {
		case entity.SectionHero:
			writeHero(&b, s, info)
		case entity.SectionAbout:
			writeAbout(&b, s)
		case entity.SectionServices:
			writeServices(&b, s)
		case entity.SectionTestimonials:
			writeTestimonials(&b, s)
		case entity.SectionContact:
			writeContact(&b, s, info)
		}
	}
	b.WriteString(`</main>` + "\n")
	b.WriteString(fmt.Sprintf(`<footer><p>&copy; %s</p></footer>`, esc(content.BusinessName)))

	return WrapPage(b.String())
}

// heroCTATarget picks the primary call-to-action target: WhatsApp deep link
// when a WhatsApp or phone number exists, else a tel: link, else the in-page
// contact anchor.
func heroCTATarget(info entity.ContactInfo) string {
	if d := info.WhatsAppDigits(); d != "" {
		return "https://wa.me/" + d
	}
	if d := info.PhoneDigits(); d != "" {
		return "tel:" + d
	}
	return "#contact"
}

func writeHero(b *strings.Builder, s entity.Section, info entity.ContactInfo) {
	label := s.CTALabel
	if label == "" {
		label = "Get in touch"
	}

	b.WriteString(`<section class="hero">` + "\n")
	fmt.Fprintf(b, "<h1>%s</h1>\n", esc(s.Heading))
	if s.Subheading != "" {
		fmt.Fprintf(b, "<p>%s</p>\n", esc(s.Subheading))
	}
	fmt.Fprintf(b, `<a class="btn btn-primary" href="%s">%s</a>`+"\n", heroCTATarget(info), esc(label))
	b.WriteString("</section>\n")
}

func writeAbout(b *strings.Builder, s entity.Section) {
	b.WriteString(`<section id="about">` + "\n")
	b.WriteString("<h2>About Us</h2>\n")
	fmt.Fprintf(b, "<p>%s</p>\n", esc(s.Body))
	b.WriteString("</section>\n")
}

func writeServices(b *strings.Builder, s entity.Section) {
	b.WriteString(`<section id="services">` + "\n")
	b.WriteString("<h2>Our Services</h2>\n")
	b.WriteString(`<div class="grid">` + "\n")
	for _, svc := range s.Services {
		b.WriteString(`<div class="card">` + "\n")
		fmt.Fprintf(b, "<h3>%s</h3>\n", esc(svc.Title))
		if svc.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", esc(svc.Description))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n</section>\n")
}

func writeTestimonials(b *strings.Builder, s entity.Section) {
	b.WriteString(`<section id="testimonials">` + "\n")
	b.WriteString("<h2>What Clients Say</h2>\n")
	for _, t := range s.Testimonials {
		b.WriteString("<blockquote>\n")
		fmt.Fprintf(b, "<p>%s</p>\n", esc(t.Quote))
		if t.Author != "" {
			fmt.Fprintf(b, "<cite>%s</cite>\n", esc(t.Author))
		}
		b.WriteString("</blockquote>\n")
	}
	b.WriteString("</section>\n")
}

func writeContact(b *strings.Builder, s entity.Section, info entity.ContactInfo) {
	b.WriteString(`<section id="contact">` + "\n")
	b.WriteString("<h2>Contact</h2>\n")
	if s.Blurb != "" {
		fmt.Fprintf(b, "<p>%s</p>\n", esc(s.Blurb))
	}
	b.WriteString(ContactList(info))
	b.WriteString("</section>\n")
}

// ContactList renders the canonical contact block: visible text stays
// byte-for-byte as extracted, hrefs carry the digit-stripped forms.
func ContactList(info entity.ContactInfo) string {
	var b strings.Builder
	b.WriteString(`<ul class="contact-list">` + "\n")
	if info.Phone != "" {
		fmt.Fprintf(&b, `<li><a href="tel:%s">%s</a></li>`+"\n", info.PhoneDigits(), esc(info.Phone))
	}
	if d := info.WhatsAppDigits(); d != "" {
		fmt.Fprintf(&b, `<li><a href="https://wa.me/%s">WhatsApp us</a></li>`+"\n", d)
	}
	if info.Email != "" {
		fmt.Fprintf(&b, `<li><a href="mailto:%s">%s</a></li>`+"\n", info.Email, esc(info.Email))
	}
	if info.Address != "" {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(info.Address))
	}
	b.WriteString("</ul>\n")
	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}
