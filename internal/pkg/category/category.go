// Package category classifies a site description into a design category via
// an explicit ordered rule table, so the rules stay independently testable.
package category

import "strings"

type Category string

const (
	Portfolio Category = "portfolio"
	Ecommerce Category = "ecommerce"
	Blog      Category = "blog"
	Business  Category = "business"
)

type rule struct {
	keyword  string
	category Category
}

// Ordered: the first matching keyword wins.
var rules = []rule{
	{"portfolio", Portfolio},
	{"freelancer", Portfolio},
	{"resume", Portfolio},
	{"my projects", Portfolio},
	{"e-commerce", Ecommerce},
	{"ecommerce", Ecommerce},
	{"online store", Ecommerce},
	{"online shop", Ecommerce},
	{"shop", Ecommerce},
	{"store", Ecommerce},
	{"product catalogue", Ecommerce},
	{"product catalog", Ecommerce},
	{"sell", Ecommerce},
	{"blog", Blog},
	{"magazine", Blog},
	{"newsletter", Blog},
	{"articles", Blog},
}

// Detect returns the design category for a description, defaulting to
// Business when no rule matches.
func Detect(description string) Category {
	lower := strings.ToLower(description)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.category
		}
	}
	return Business
}

// DesignGuide returns the category-specific guidance injected into prompts.
func (c Category) DesignGuide() string {
	switch c {
	case Portfolio:
		return `Design guide: personal portfolio. Strong hero with name and role,
project cards in a responsive grid, a skills section, an about section with a
photo, and a clear contact call-to-action. Tone: confident, personal.`
	case Ecommerce:
		return `Design guide: small product catalogue. Product cards with image,
name, price and an order button, category highlights, trust signals
(delivery, payment, returns), and prominent order/contact call-to-actions.
Tone: persuasive, concrete.`
	case Blog:
		return `Design guide: blog/magazine. Featured post hero, post cards with
image, title and excerpt, an about-the-author section and a subscribe or
contact call-to-action. Tone: editorial, readable.`
	default:
		return `Design guide: small business site. Hero with the value
proposition, services overview as cards, social proof, an about section and a
contact section with a strong call-to-action. Tone: professional, trustworthy.`
	}
}

// ReferenceSections returns the typical section list used by the planner as
// a reference structure for the detected category.
func (c Category) ReferenceSections() string {
	switch c {
	case Portfolio:
		return "hero, featured projects, skills, about, contact"
	case Ecommerce:
		return "hero, featured products, categories, why choose us, contact/order"
	case Blog:
		return "hero/featured post, latest posts, about the author, subscribe, contact"
	default:
		return "hero, services, about, testimonials, contact"
	}
}
