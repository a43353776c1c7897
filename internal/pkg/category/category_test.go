package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        Category
	}{
		{"portfolio keyword", "A portfolio for my design work", Portfolio},
		{"freelancer keyword", "I am a freelancer looking for clients", Portfolio},
		{"ecommerce keyword", "An online store selling ceramics", Ecommerce},
		{"shop keyword", "A small shop in town", Ecommerce},
		{"blog keyword", "A blog about mountain hiking", Blog},
		{"no match defaults to business", "A plumbing company in Leeds", Business},
		{"case insensitive", "MY PORTFOLIO SITE", Portfolio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.description))
		})
	}
}

func TestDetect_FirstRuleWins(t *testing.T) {
	// Both portfolio and shop keywords present; the rule table is ordered.
	assert.Equal(t, Portfolio, Detect("portfolio of my shop designs"))
}

func TestCategory_GuidesNonEmpty(t *testing.T) {
	for _, c := range []Category{Portfolio, Ecommerce, Blog, Business} {
		assert.NotEmpty(t, c.DesignGuide())
		assert.NotEmpty(t, c.ReferenceSections())
	}
}
