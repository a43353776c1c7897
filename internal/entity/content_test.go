package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContent = `{
  "businessName": "Acme",
  "tagline": "We fix things",
  "sections": [
    {"type": "hero", "heading": "We fix things", "subheading": "Fast", "ctaLabel": "Call now"},
    {"type": "about", "body": "Family business since 1990."},
    {"type": "services", "services": [{"title": "Repairs", "description": "Anything broken."}]},
    {"type": "contact", "blurb": "Get in touch."}
  ]
}`

func TestDecodePageContent_Valid(t *testing.T) {
	content, err := DecodePageContent(validContent)
	require.NoError(t, err)

	assert.Equal(t, "Acme", content.BusinessName)
	require.Len(t, content.Sections, 4)
	assert.Equal(t, SectionHero, content.Sections[0].Kind)
	assert.Equal(t, SectionContact, content.Sections[3].Kind)
}

func TestDecodePageContent_StripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validContent + "\n```"

	content, err := DecodePageContent(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Acme", content.BusinessName)
}

func TestDecodePageContent_WithTestimonials(t *testing.T) {
	raw := `{
  "businessName": "Acme",
  "sections": [
    {"type": "hero", "heading": "H"},
    {"type": "about", "body": "B"},
    {"type": "services", "services": [{"title": "S"}]},
    {"type": "testimonials", "testimonials": [{"quote": "Great", "author": "Jo"}]},
    {"type": "contact"}
  ]
}`

	content, err := DecodePageContent(raw)
	require.NoError(t, err)
	require.Len(t, content.Sections, 5)
	assert.Equal(t, SectionTestimonials, content.Sections[3].Kind)
}

func TestDecodePageContent_NotJSON(t *testing.T) {
	_, err := DecodePageContent("this is not json")
	assert.ErrorIs(t, err, ErrInvalidContentFormat)
}

func TestDecodePageContent_WrongSectionOrder(t *testing.T) {
	raw := `{
  "sections": [
    {"type": "about", "body": "B"},
    {"type": "hero", "heading": "H"},
    {"type": "services", "services": [{"title": "S"}]},
    {"type": "contact"}
  ]
}`

	_, err := DecodePageContent(raw)
	assert.ErrorIs(t, err, ErrInvalidContentFormat)
}

func TestDecodePageContent_MissingSection(t *testing.T) {
	raw := `{
  "sections": [
    {"type": "hero", "heading": "H"},
    {"type": "about", "body": "B"},
    {"type": "contact"}
  ]
}`

	_, err := DecodePageContent(raw)
	assert.ErrorIs(t, err, ErrInvalidContentFormat)
}

func TestDecodePageContent_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"hero without heading", `{"sections":[{"type":"hero"},{"type":"about","body":"B"},{"type":"services","services":[{"title":"S"}]},{"type":"contact"}]}`},
		{"about without body", `{"sections":[{"type":"hero","heading":"H"},{"type":"about"},{"type":"services","services":[{"title":"S"}]},{"type":"contact"}]}`},
		{"empty services", `{"sections":[{"type":"hero","heading":"H"},{"type":"about","body":"B"},{"type":"services","services":[]},{"type":"contact"}]}`},
		{"service without title", `{"sections":[{"type":"hero","heading":"H"},{"type":"about","body":"B"},{"type":"services","services":[{"description":"D"}]},{"type":"contact"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePageContent(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidContentFormat)
		})
	}
}
