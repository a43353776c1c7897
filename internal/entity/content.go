package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// SectionKind tags one variant of the structured page content union.
type SectionKind string

const (
	SectionHero         SectionKind = "hero"
	SectionAbout        SectionKind = "about"
	SectionServices     SectionKind = "services"
	SectionTestimonials SectionKind = "testimonials"
	SectionContact      SectionKind = "contact"
)

// PageContent is the typed document produced by the single-page business
// flow. Sections must appear in the fixed order hero, about, services,
// [testimonials], contact; anything else is a decode failure.
type PageContent struct {
	BusinessName string    `json:"businessName"`
	Tagline      string    `json:"tagline"`
	Sections     []Section `json:"sections"`
}

// Section is a tagged union over the five section kinds. Only the fields
// belonging to the tagged kind are populated.
type Section struct {
	Kind SectionKind `json:"type"`

	// hero
	Heading    string `json:"heading,omitempty"`
	Subheading string `json:"subheading,omitempty"`
	CTALabel   string `json:"ctaLabel,omitempty"`

	// about
	Body string `json:"body,omitempty"`

	// services
	Services []ServiceItem `json:"services,omitempty"`

	// testimonials
	Testimonials []Testimonial `json:"testimonials,omitempty"`

	// contact
	Blurb string `json:"blurb,omitempty"`
}

type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
}

var jsonFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// DecodePageContent strips any code-fence markers the model wrapped the JSON
// in, parses it and validates the section contract. Any structural mismatch
// is reported as ErrInvalidContentFormat; content is never patched.
func DecodePageContent(raw string) (*PageContent, error) {
	cleaned := strings.TrimSpace(raw)
	if m := jsonFence.FindStringSubmatch(cleaned); m != nil {
		cleaned = strings.TrimSpace(m[1])
	}

	var content PageContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContentFormat, err)
	}

	if err := content.validate(); err != nil {
		return nil, err
	}

	return &content, nil
}

// validate enforces the fixed section order and per-kind required fields.
func (c *PageContent) validate() error {
	kinds := make([]SectionKind, 0, len(c.Sections))
	for _, s := range c.Sections {
		kinds = append(kinds, s.Kind)
	}

	want := [][]SectionKind{
		{SectionHero, SectionAbout, SectionServices, SectionContact},
		{SectionHero, SectionAbout, SectionServices, SectionTestimonials, SectionContact},
	}

	ok := false
	for _, seq := range want {
		if equalKinds(kinds, seq) {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: sections must be hero, about, services, [testimonials], contact; got %v",
			ErrInvalidContentFormat, kinds)
	}

	for _, s := range c.Sections {
		switch s.Kind {
		case SectionHero:
			if s.Heading == "" {
				return fmt.Errorf("%w: hero section requires a heading", ErrInvalidContentFormat)
			}
		case SectionAbout:
			if s.Body == "" {
				return fmt.Errorf("%w: about section requires a body", ErrInvalidContentFormat)
			}
		case SectionServices:
			if len(s.Services) == 0 {
				return fmt.Errorf("%w: services section requires at least one service", ErrInvalidContentFormat)
			}
			for _, svc := range s.Services {
				if svc.Title == "" {
					return fmt.Errorf("%w: every service requires a title", ErrInvalidContentFormat)
				}
			}
		case SectionTestimonials:
			for _, t := range s.Testimonials {
				if t.Quote == "" {
					return fmt.Errorf("%w: every testimonial requires a quote", ErrInvalidContentFormat)
				}
			}
		}
	}

	return nil
}

func equalKinds(got, want []SectionKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
