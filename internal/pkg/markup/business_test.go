package markup

import (
	"testing"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func businessContent() *entity.PageContent {
	return &entity.PageContent{
		BusinessName: "Acme & Co",
		Tagline:      "We fix things",
		Sections: []entity.Section{
			{Kind: entity.SectionHero, Heading: "We fix things", Subheading: "Fast", CTALabel: "Call now"},
			{Kind: entity.SectionAbout, Body: "Family business."},
			{Kind: entity.SectionServices, Services: []entity.ServiceItem{{Title: "Repairs", Description: "Anything."}}},
			{Kind: entity.SectionContact, Blurb: "Say hello."},
		},
	}
}

func TestBuildBusinessPage_Structure(t *testing.T) {
	page := BuildBusinessPage(businessContent(), entity.ContactInfo{})

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, `<section class="hero">`)
	assert.Contains(t, page, `<section id="about">`)
	assert.Contains(t, page, `<section id="services">`)
	assert.Contains(t, page, `<section id="contact">`)
	assert.Contains(t, page, "Acme &amp; Co")
}

func TestBuildBusinessPage_HeroCTAPrecedence(t *testing.T) {
	content := businessContent()

	withWhatsApp := BuildBusinessPage(content, entity.ContactInfo{WhatsApp: "+1 555", Phone: "+1 666"})
	assert.Contains(t, withWhatsApp, `href="https://wa.me/1555"`)

	// A phone number alone still backs the WhatsApp deep link.
	withPhone := BuildBusinessPage(content, entity.ContactInfo{Phone: "(07) 00-123-456"})
	assert.Contains(t, withPhone, `class="btn btn-primary" href="https://wa.me/0700123456"`)

	// Email alone never becomes the hero CTA target.
	withEmail := BuildBusinessPage(content, entity.ContactInfo{Email: "a@b.c"})
	assert.Contains(t, withEmail, `class="btn btn-primary" href="#contact"`)
}

func TestContactList_VisibleTextVerbatim(t *testing.T) {
	info := entity.ContactInfo{
		Phone:   "(07) 00-123-456",
		Email:   "hello@acme.io",
		Address: "1 Main St",
	}

	list := ContactList(info)

	require.Contains(t, list, `<a href="tel:0700123456">(07) 00-123-456</a>`)
	assert.Contains(t, list, `<a href="https://wa.me/0700123456">WhatsApp us</a>`)
	assert.Contains(t, list, `<a href="mailto:hello@acme.io">hello@acme.io</a>`)
	assert.Contains(t, list, "<li>1 Main St</li>")
}

func TestContactList_OmitsMissingFields(t *testing.T) {
	list := ContactList(entity.ContactInfo{Email: "a@b.c"})

	assert.NotContains(t, list, "tel:")
	assert.NotContains(t, list, "wa.me")
	assert.Contains(t, list, "mailto:a@b.c")
}
