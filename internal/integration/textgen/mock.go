package textgen

import (
	"context"
	"strings"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns canned generation results for local development
// without a text-generation credential.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string, hint entity.ModelHint) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating text", zap.String("hint", string(hint)))

	switch {
	case strings.Contains(prompt, "Write the complete styles.css"):
		return "```css\n.hero { text-align: center; }\n```", nil

	case strings.Contains(prompt, "one-page business website"):
		return "```json\n" + `{
  "businessName": "Acme Consulting",
  "tagline": "Practical advice, real results",
  "sections": [
    {"type": "hero", "heading": "Practical advice, real results", "subheading": "Strategy and operations support for small businesses.", "ctaLabel": "Book a consultation"},
    {"type": "about", "body": "Acme Consulting helps owner-led businesses streamline operations and grow sustainably."},
    {"type": "services", "services": [
      {"title": "Strategy Review", "description": "A focused assessment of where your business stands."},
      {"title": "Operations Audit", "description": "Find and fix the bottlenecks slowing you down."}
    ]},
    {"type": "contact", "blurb": "Tell us about your business and we will get back within one working day."}
  ]
}` + "\n```", nil

	case strings.Contains(prompt, "Write a concise site blueprint"):
		return `page1.html - landing page: hero, services overview, social proof, contact teaser
page2.html - detailed services with pricing
page3.html - contact page with full details

Visual direction: deep slate and blue palette, generous whitespace, modern sans-serif.`, nil

	default:
		return "```html\n" + `<main>
<section class="hero">
<h1>Welcome</h1>
<p>Professional services for demanding clients.</p>
<a class="btn btn-primary" href="#">Get Started</a>
</section>
<section id="services">
<h2>Services</h2>
<div class="grid">
<div class="card"><img src="https://placehold.it/800x600?text=consulting,office" alt="Consulting session"><h3>Consulting</h3><p>Hands-on help where it matters.</p></div>
<div class="card"><img src="https://placehold.it/800x600?text=team,people" alt="Our team"><h3>Support</h3><p>We stay involved after delivery.</p></div>
</div>
</section>
<section id="contact">
<h2>Contact</h2>
<p>Reach out any time.</p>
<a href="tel:+000">Call us</a>
</section>
</main>
<footer><p>&copy; Demo</p></footer>` + "\n```", nil
	}
}
