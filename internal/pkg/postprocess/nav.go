package postprocess

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/futig/sitegen-backend/internal/entity"
)

const fallbackBrand = "Your Brand"

// NormalizeSite is the batch stage: it stamps one canonical brand into every
// page and rebuilds every page's header so the navigation is structurally
// identical across the bundle, differing only in which entry is active.
func (p *Pipeline) NormalizeSite(pages, filenames []string) ([]string, error) {
	if len(pages) != len(filenames) {
		return nil, entity.ErrBundleMismatch
	}

	docs := make([]*goquery.Document, len(pages))
	for i, page := range pages {
		doc, err := parse(page)
		if err != nil {
			return nil, fmt.Errorf("parse page %d: %w", i+1, err)
		}
		docs[i] = doc
	}

	brand := p.canonicalBrand(docs)
	labels := navLabels(len(pages))

	out := make([]string, len(pages))
	for i, doc := range docs {
		p.rebuildHeader(doc, brand, filenames, labels, i)
		setTitle(doc, labels[i]+" – "+brand)

		rendered, err := render(doc)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		out[i] = rendered
	}

	return out, nil
}

// canonicalBrand picks the one brand name for the bundle: the explicit
// business name from the description, else the first page's existing logo
// text, else a generic fallback.
func (p *Pipeline) canonicalBrand(docs []*goquery.Document) string {
	if p.brand != "" {
		return p.brand
	}
	if len(docs) > 0 {
		if logo := strings.TrimSpace(docs[0].Find(".logo").First().Text()); logo != "" {
			return logo
		}
	}
	return fallbackBrand
}

// navLabels assigns labels positionally: first page is Home, last page is
// Contact when there are at least 3 pages, the rest are generic.
func navLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		switch {
		case i == 0:
			labels[i] = "Home"
		case i == n-1 && n >= 3:
			labels[i] = "Contact"
		default:
			labels[i] = fmt.Sprintf("Page %d", i+1)
		}
	}
	return labels
}

// rebuildHeader replaces the page's header with the canonical one: logo
// linking to the first page, a nav toggle, and the shared navigation list
// with only the current page marked active. The header always ends up as the
// first child of body.
func (p *Pipeline) rebuildHeader(doc *goquery.Document, brand string, filenames, labels []string, current int) {
	header := doc.Find("body > header").First()
	if header.Length() == 0 {
		header = doc.Find("header").First()
	}
	header.Remove()

	var nav strings.Builder
	nav.WriteString("<ul>\n")
	for j, filename := range filenames {
		active := ""
		if j == current {
			active = ` class="active"`
		}
		fmt.Fprintf(&nav, `<li><a href="%s"%s>%s</a></li>`+"\n", filename, active, html.EscapeString(labels[j]))
	}
	nav.WriteString("</ul>")

	headerHTML := fmt.Sprintf(`<header>
<a class="logo" href="%s">%s</a>
<button class="nav-toggle" type="button" aria-label="Toggle navigation"><span></span><span></span><span></span></button>
<nav>
%s
</nav>
</header>`, filenames[0], html.EscapeString(brand), nav.String())

	doc.Find("body").First().PrependHtml(headerHTML)
}

func setTitle(doc *goquery.Document, title string) {
	t := doc.Find("head title").First()
	if t.Length() == 0 {
		doc.Find("head").First().AppendHtml("<title></title>")
		t = doc.Find("head title").First()
	}
	t.SetText(title)
}
