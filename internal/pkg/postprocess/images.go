package postprocess

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/futig/sitegen-backend/internal/entity"
	"golang.org/x/sync/singleflight"
)

// Searcher looks up one photo matching the keywords and orientation and
// returns its base URL.
type Searcher interface {
	Search(ctx context.Context, keywords, orientation string) (string, error)
}

// ImageResolver resolves placeholder image directives for one bundle build.
// Its cache lives exactly as long as the build: identical directives within
// and across pages issue one external lookup, with concurrent duplicates
// awaiting the first lookup's result. Failed lookups are cached too, so a
// broken keyword is not retried within the bundle.
type ImageResolver struct {
	searcher Searcher

	mu    sync.Mutex
	cache map[string]string // directive key -> resolved URL, "" for a failed lookup
	group singleflight.Group
}

func NewImageResolver(searcher Searcher) *ImageResolver {
	return &ImageResolver{
		searcher: searcher,
		cache:    make(map[string]string),
	}
}

// ResolvePages rewrites every resolvable placeholder image across the pages,
// running all external lookups concurrently. A nil searcher (missing
// credential) short-circuits the stage: the pages pass through untouched, a
// degraded but valid bundle. Individual lookup failures leave the original
// placeholder in place.
func (r *ImageResolver) ResolvePages(ctx context.Context, pages []string) ([]string, error) {
	if r == nil || r.searcher == nil {
		return pages, nil
	}

	docs := make([]*goquery.Document, len(pages))
	for i, page := range pages {
		doc, err := parse(page)
		if err != nil {
			return nil, fmt.Errorf("parse page %d: %w", i+1, err)
		}
		docs[i] = doc
	}

	type target struct {
		sel       *goquery.Selection
		directive entity.ImageDirective
	}
	var targets []target

	for _, doc := range docs {
		doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
			src, _ := s.Attr("src")
			alt, _ := s.Attr("alt")
			if d, ok := ParseDirective(src, alt); ok {
				targets = append(targets, target{sel: s, directive: d})
			}
		})
	}

	resolved := make([]string, len(targets))
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, d entity.ImageDirective) {
			defer wg.Done()
			resolved[i] = r.resolve(ctx, d)
		}(i, t.directive)
	}
	wg.Wait()

	for i, t := range targets {
		if resolved[i] != "" {
			t.sel.SetAttr("src", resolved[i])
		}
	}

	out := make([]string, len(pages))
	for i, doc := range docs {
		rendered, err := render(doc)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		out[i] = rendered
	}

	return out, nil
}

// resolve returns the final image URL for a directive, or "" when the lookup
// failed. The first concurrent lookup per key wins; duplicates share it.
func (r *ImageResolver) resolve(ctx context.Context, d entity.ImageDirective) string {
	key := fmt.Sprintf("%dx%d:%s", d.Width, d.Height, d.Keywords)

	v, _, _ := r.group.Do(key, func() (any, error) {
		r.mu.Lock()
		if cached, ok := r.cache[key]; ok {
			r.mu.Unlock()
			return cached, nil
		}
		r.mu.Unlock()

		resolved := ""
		base, err := r.searcher.Search(ctx, d.Keywords, d.Orientation())
		if err == nil && base != "" {
			resolved = parameterize(base, d)
		}

		r.mu.Lock()
		r.cache[key] = resolved
		r.mu.Unlock()

		return resolved, nil
	})

	return v.(string)
}

var directiveSize = regexp.MustCompile(`\b(\d{2,4})x(\d{2,4})\b`)

// ParseDirective recognizes a placeholder image source: a WxH size token plus
// keywords from the query string, falling back to the alt text, falling back
// to a generic term.
func ParseDirective(src, alt string) (entity.ImageDirective, bool) {
	m := directiveSize.FindStringSubmatch(src)
	if m == nil {
		return entity.ImageDirective{}, false
	}

	width, _ := strconv.Atoi(m[1])
	height, _ := strconv.Atoi(m[2])

	keywords := keywordsFromSrc(src)
	if keywords == "" {
		keywords = alt
	}
	if strings.TrimSpace(keywords) == "" {
		keywords = "business"
	}

	return entity.ImageDirective{
		Width:    width,
		Height:   height,
		Keywords: normalizeKeywords(keywords),
	}, true
}

func keywordsFromSrc(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.RawQuery == "" {
		return ""
	}

	if text := u.Query().Get("text"); text != "" {
		return text
	}

	// Bare queries like "?team,people" carry the keywords directly.
	unescaped, err := url.QueryUnescape(u.RawQuery)
	if err != nil {
		return u.RawQuery
	}
	return unescaped
}

var keywordSeparators = regexp.MustCompile(`[,+\s]+`)

func normalizeKeywords(raw string) string {
	words := keywordSeparators.Split(strings.ToLower(strings.TrimSpace(raw)), -1)
	cleaned := words[:0]
	for _, w := range words {
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}
	return strings.Join(cleaned, " ")
}

// parameterize appends explicit size and crop arguments to the base URL
// returned by the image-search service.
func parameterize(base string, d entity.ImageDirective) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sw=%d&h=%d&fit=crop", base, sep, d.Width, d.Height)
}
