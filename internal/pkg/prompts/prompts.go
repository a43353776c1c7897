// Package prompts holds the prompt templates sent to the text-generation
// service. Keeping them in one place makes the generation contract reviewable
// without touching pipeline control flow.
package prompts

import (
	"fmt"
	"strings"

	"github.com/futig/sitegen-backend/internal/pkg/category"
)

// SitePlan builds the single planning prompt. Its output is consumed as
// opaque blueprint text by every later page prompt.
func SitePlan(description string, pageCount int, cat category.Category) string {
	return fmt.Sprintf(`You are planning a professional %d-page static website.

Website description:
---
%s
---

%s

A typical %s site uses these sections: %s.

Write a concise site blueprint:
1. List every page as "pageN.html - <page purpose>" (exactly %d pages).
2. Under each page, list its sections in order with one line on the content
   each section should carry.
3. Name the overall visual direction (colors, typography mood) in 2-3 lines.

Return plain text only, no markdown code fences.`,
		pageCount, strings.TrimSpace(description), cat.DesignGuide(), cat, cat.ReferenceSections(), pageCount)
}

// PageContent builds the prompt for one page of the fan-out. The prompt is
// self-contained via the shared plan, so pages can be generated in any order.
func PageContent(plan string, pageIndex, pageCount int, filenames []string, cat category.Category) string {
	return fmt.Sprintf(`You are generating page %d of %d of a static website.

Site blueprint:
---
%s
---

%s

Rules:
1. Generate ONLY the markup that belongs inside <body> for %s. No <html>,
   <head> or <body> tags, no stylesheet or script tags.
2. Use semantic HTML: <header>, <nav>, <main>, <section>, <article>, <footer>.
3. Give sections descriptive ids where natural (#about, #services, #contact).
4. Internal links may only reference these files: %s. In-page links use #id
   fragments.
5. For every image use a placeholder of the form
   https://placehold.it/1200x600?text=keyword,keyword with real keywords
   describing the photo that belongs there.
6. Write professional, business-grade copy. No lorem ipsum.
7. Wrap the result in triple backticks: `+"```html ... ```"+`.`,
		pageIndex+1, pageCount, strings.TrimSpace(plan), cat.DesignGuide(),
		filenames[pageIndex], strings.Join(filenames, ", "))
}

// Stylesheet builds the prompt for the shared stylesheet from the fully
// assembled HTML of all pages.
func Stylesheet(pages []string) string {
	return fmt.Sprintf(`Write the complete styles.css for the static website below.

Required behaviors and classes:
- responsive navigation: header with .logo, .nav-toggle button and nav ul;
  collapses under 768px, expands when nav has the .open class
- .active marks the current navigation entry
- header gains the .scrolled class when the page is scrolled
- card and grid utilities: .card, .grid (responsive columns)
- button states for .btn and .btn-primary (default, hover, focus)
- images: max-width 100%%, height auto, object-fit cover inside cards
- generous whitespace, a restrained professional palette, system font stack

Return only CSS, wrapped in triple backticks: `+"```css ... ```"+`.

Website HTML:
---
%s
---`, strings.Join(pages, "\n\n<!-- next page -->\n\n"))
}

// BusinessContent builds the structured-content prompt for the single-page
// business flow. The response must be a JSON document, decoded strictly.
func BusinessContent(description string) string {
	return fmt.Sprintf(`Create the content for a one-page business website.

Business description:
---
%s
---

Return a JSON document with exactly this shape and section order:

{
  "businessName": "...",
  "tagline": "...",
  "sections": [
    {"type": "hero", "heading": "...", "subheading": "...", "ctaLabel": "..."},
    {"type": "about", "body": "..."},
    {"type": "services", "services": [{"title": "...", "description": "..."}]},
    {"type": "testimonials", "testimonials": [{"quote": "...", "author": "..."}]},
    {"type": "contact", "blurb": "..."}
  ]
}

Rules:
1. hero, about, services and contact are mandatory; testimonials is optional
   and must be omitted entirely when you have nothing credible to put there.
2. Use the business's real details from the description. Never invent phone
   numbers, emails or addresses.
3. Write professional, business-grade copy. No lorem ipsum.
4. Return only the JSON, wrapped in triple backticks: `+"```json ... ```"+`.`,
		strings.TrimSpace(description))
}
