package postprocess

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePages() ([]string, []string) {
	pages := []string{
		`<html><head><title>a</title></head><body><header><a class="logo" href="#">Generated Brand</a></header><main>one</main></body></html>`,
		`<html><head><title>b</title></head><body><main>two</main></body></html>`,
		`<html><head><title>c</title></head><body><header><span class="logo">Other Name</span></header><main>three</main></body></html>`,
	}
	return pages, []string{"page1.html", "page2.html", "page3.html"}
}

func mustParse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestNormalizeSite_IdenticalNavigation(t *testing.T) {
	pages, filenames := threePages()

	out, err := New(entity.ContactInfo{}, "").NormalizeSite(pages, filenames)
	require.NoError(t, err)
	require.Len(t, out, 3)

	var navs []string
	for _, page := range out {
		doc := mustParse(t, page)

		header := doc.Find("body > *").First()
		assert.True(t, header.Is("header"), "header is the first child of body")

		nav, err := doc.Find("header nav ul").Html()
		require.NoError(t, err)
		// Strip the active marker; everything else must match across pages.
		navs = append(navs, strings.ReplaceAll(nav, ` class="active"`, ""))
	}

	assert.Equal(t, navs[0], navs[1])
	assert.Equal(t, navs[1], navs[2])
}

func TestNormalizeSite_ActiveEntryPerPage(t *testing.T) {
	pages, filenames := threePages()

	out, err := New(entity.ContactInfo{}, "").NormalizeSite(pages, filenames)
	require.NoError(t, err)

	for i, page := range out {
		doc := mustParse(t, page)

		active := doc.Find("header nav a.active")
		require.Equal(t, 1, active.Length(), "exactly one active entry on page %d", i+1)

		href, _ := active.Attr("href")
		assert.Equal(t, filenames[i], href)
	}
}

func TestNormalizeSite_PositionalLabels(t *testing.T) {
	pages, filenames := threePages()

	out, err := New(entity.ContactInfo{}, "").NormalizeSite(pages, filenames)
	require.NoError(t, err)

	doc := mustParse(t, out[0])
	var labels []string
	doc.Find("header nav a").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})

	assert.Equal(t, []string{"Home", "Page 2", "Contact"}, labels)
}

func TestNormalizeSite_BrandPrecedence(t *testing.T) {
	pages, filenames := threePages()

	// Explicit brand wins over the generated logo text.
	out, err := New(entity.ContactInfo{}, "Real Brand").NormalizeSite(pages, filenames)
	require.NoError(t, err)
	for _, page := range out {
		doc := mustParse(t, page)
		assert.Equal(t, "Real Brand", doc.Find(".logo").First().Text())
	}

	// Without an explicit brand the first page's logo text is adopted everywhere.
	pages, filenames = threePages()
	out, err = New(entity.ContactInfo{}, "").NormalizeSite(pages, filenames)
	require.NoError(t, err)
	for _, page := range out {
		doc := mustParse(t, page)
		assert.Equal(t, "Generated Brand", doc.Find(".logo").First().Text())
	}
}

func TestNormalizeSite_FallbackBrand(t *testing.T) {
	pages := []string{`<html><head></head><body><main>x</main></body></html>`}

	out, err := New(entity.ContactInfo{}, "").NormalizeSite(pages, []string{"index.html"})
	require.NoError(t, err)

	doc := mustParse(t, out[0])
	assert.Equal(t, "Your Brand", doc.Find(".logo").First().Text())
}

func TestNormalizeSite_TitleStamped(t *testing.T) {
	pages, filenames := threePages()

	out, err := New(entity.ContactInfo{}, "Acme").NormalizeSite(pages, filenames)
	require.NoError(t, err)

	assert.Contains(t, out[0], "<title>Home – Acme</title>")
	assert.Contains(t, out[2], "<title>Contact – Acme</title>")
}

func TestNormalizeSite_TwoPagesNoContactLabel(t *testing.T) {
	pages := []string{
		`<html><head></head><body><main>a</main></body></html>`,
		`<html><head></head><body><main>b</main></body></html>`,
	}

	out, err := New(entity.ContactInfo{}, "Acme").NormalizeSite(pages, []string{"page1.html", "page2.html"})
	require.NoError(t, err)

	doc := mustParse(t, out[1])
	var labels []string
	doc.Find("header nav a").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})
	assert.Equal(t, []string{"Home", "Page 2"}, labels)
}

func TestNormalizeSite_LengthMismatch(t *testing.T) {
	_, err := New(entity.ContactInfo{}, "").NormalizeSite([]string{"<html></html>"}, []string{"a.html", "b.html"})
	assert.ErrorIs(t, err, entity.ErrBundleMismatch)
}
