package generation

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/pkg/assets"
	"github.com/futig/sitegen-backend/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const pageFragment = "```html\n" + `<main>
<section class="hero"><h1>Welcome</h1><a class="btn" href="#">Get Started</a></section>
<section id="contact"><h2>Contact</h2><a href="tel:+000">Call</a></section>
</main>` + "\n```"

const businessJSON = "```json\n" + `{
  "businessName": "Acme",
  "sections": [
    {"type": "hero", "heading": "We fix things"},
    {"type": "about", "body": "Family business."},
    {"type": "services", "services": [{"title": "Repairs"}]},
    {"type": "contact", "blurb": "Say hello."}
  ]
}` + "\n```"

// scriptedTextGen dispatches on the prompt kind and can inject failures per
// kind, counting every call it receives.
type scriptedTextGen struct {
	mu sync.Mutex

	planCalls     int
	pageCalls     int
	styleCalls    int
	businessCalls int

	failPlan         bool
	failAllPages     bool
	pageFailuresLeft int
	failStyle        bool
	businessResponse string
}

func (s *scriptedTextGen) Generate(_ context.Context, prompt string, _ entity.ModelHint) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case strings.Contains(prompt, "Write a concise site blueprint"):
		s.planCalls++
		if s.failPlan {
			return "", entity.ErrGenerationFailed
		}
		return "page1.html - landing\npage2.html - services\npage3.html - contact", nil

	case strings.Contains(prompt, "You are generating page"):
		s.pageCalls++
		if s.failAllPages {
			return "", entity.ErrGenerationFailed
		}
		if s.pageFailuresLeft > 0 {
			s.pageFailuresLeft--
			return "", entity.ErrGenerationFailed
		}
		return pageFragment, nil

	case strings.Contains(prompt, "Write the complete styles.css"):
		s.styleCalls++
		if s.failStyle {
			return "", entity.ErrGenerationFailed
		}
		return "```css\n.hero { color: navy; }\n```", nil

	case strings.Contains(prompt, "one-page business website"):
		s.businessCalls++
		if s.businessResponse != "" {
			return s.businessResponse, nil
		}
		return businessJSON, nil
	}

	return "", entity.ErrGenerationFailed
}

func testRetryConfig() *retry.RetryConfig {
	return &retry.RetryConfig{Attempts: 2, Delay: time.Millisecond, MaxDelay: time.Millisecond}
}

func newTestUsecase(gen *scriptedTextGen) *GenerationUsecase {
	return NewUsecase(gen, nil, testRetryConfig(), zap.NewNop())
}

func TestGenerateSite_EndToEnd(t *testing.T) {
	gen := &scriptedTextGen{}
	uc := newTestUsecase(gen)

	description := "A bakery in Lisbon.\nBusiness Name: Padaria Central\nPhone: +351 912 345 678"
	b, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: description,
		PageCount:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"page1.html", "page2.html", "page3.html"}, b.Pages)
	require.Len(t, b.HTML, 3)

	for _, page := range b.HTML {
		assert.Contains(t, page, "<!DOCTYPE html>")
		assert.Contains(t, page, "Padaria Central", "canonical brand on every page")
		assert.Contains(t, page, `class="nav-toggle"`)
		assert.Contains(t, page, "tel:351912345678", "contact links wired to real digits")
	}

	assert.Contains(t, b.HTML[0], "<title>Home – Padaria Central</title>")
	assert.Contains(t, b.HTML[2], "<title>Contact – Padaria Central</title>")

	assert.Contains(t, b.CSS, ".hero { color: navy; }")
	assert.Contains(t, b.CSS, assets.StyleOverrides)
	assert.Equal(t, assets.SharedScript, b.JS)

	assert.Equal(t, 1, gen.planCalls)
	assert.Equal(t, 3, gen.pageCalls)
	assert.Equal(t, 1, gen.styleCalls)
}

func TestGenerateSite_RewiresPlaceholderCTAs(t *testing.T) {
	gen := &scriptedTextGen{}
	uc := newTestUsecase(gen)

	b, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "A bakery.\nPhone: +1 555",
		PageCount:   1,
	})
	require.NoError(t, err)

	assert.Contains(t, b.HTML[0], `href="https://wa.me/1555"`)
	assert.Contains(t, b.HTML[0], `href="tel:1555"`)
	assert.NotContains(t, b.HTML[0], `href="#">Get Started`)
}

func TestGenerateSite_PageRetriedOnce(t *testing.T) {
	gen := &scriptedTextGen{pageFailuresLeft: 1}
	uc := newTestUsecase(gen)

	b, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "A bakery",
		PageCount:   3,
	})
	require.NoError(t, err, "a single transient page failure is transparent")

	assert.Len(t, b.HTML, 3)
	assert.Equal(t, 4, gen.pageCalls, "one retry on top of the three page calls")
}

func TestGenerateSite_PageFailingTwiceAborts(t *testing.T) {
	gen := &scriptedTextGen{failAllPages: true}
	uc := newTestUsecase(gen)

	_, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "A bakery",
		PageCount:   2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
	assert.Equal(t, 0, gen.styleCalls, "no stylesheet call after a failed fan-out")
}

func TestGenerateSite_PlanFailureAborts(t *testing.T) {
	gen := &scriptedTextGen{failPlan: true}
	uc := newTestUsecase(gen)

	_, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "A bakery",
		PageCount:   3,
	})
	require.Error(t, err)

	assert.Equal(t, 1, gen.planCalls, "the planning call is never retried")
	assert.Equal(t, 0, gen.pageCalls)
}

func TestGenerateSite_StylesheetFailureAborts(t *testing.T) {
	gen := &scriptedTextGen{failStyle: true}
	uc := newTestUsecase(gen)

	_, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "A bakery",
		PageCount:   1,
	})
	assert.Error(t, err, "bundles are all-or-nothing")
}

func TestGenerateSite_ValidationShortCircuits(t *testing.T) {
	gen := &scriptedTextGen{}
	uc := newTestUsecase(gen)

	_, err := uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "A bakery",
		PageCount:   0,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidPageCount)

	_, err = uc.GenerateSite(context.Background(), &entity.GenerationRequest{
		Description: "  ",
		PageCount:   3,
	})
	assert.ErrorIs(t, err, entity.ErrEmptyDescription)

	assert.Equal(t, 0, gen.planCalls, "invalid requests never reach the model")
}

func TestGenerateBusinessSite_EndToEnd(t *testing.T) {
	gen := &scriptedTextGen{}
	uc := newTestUsecase(gen)

	b, err := uc.GenerateBusinessSite(context.Background(), "A repair shop.\nPhone: +1 555")
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html"}, b.Pages)
	require.Len(t, b.HTML, 1)

	page := b.HTML[0]
	assert.Contains(t, page, "We fix things")
	assert.Contains(t, page, `id="services"`)
	assert.Contains(t, page, "tel:1555")
	assert.Contains(t, page, "Acme", "brand from the content document")

	assert.Equal(t, assets.DesignSystemCSS+"\n"+assets.StyleOverrides, b.CSS)
	assert.Equal(t, 0, gen.styleCalls, "fixed design system, no stylesheet call")
}

func TestGenerateBusinessSite_ExplicitNameOverridesContent(t *testing.T) {
	gen := &scriptedTextGen{}
	uc := newTestUsecase(gen)

	b, err := uc.GenerateBusinessSite(context.Background(), "A shop.\nBusiness Name: Real Name Ltd")
	require.NoError(t, err)

	assert.Contains(t, b.HTML[0], "Real Name Ltd")
}

func TestGenerateBusinessSite_DecodeFailureIsFatal(t *testing.T) {
	gen := &scriptedTextGen{businessResponse: "sorry, here is some prose instead of JSON"}
	uc := newTestUsecase(gen)

	_, err := uc.GenerateBusinessSite(context.Background(), "A shop")
	require.Error(t, err)

	assert.ErrorIs(t, err, entity.ErrInvalidContentFormat)
	assert.Equal(t, 1, gen.businessCalls, "malformed content is not retried")
}

func TestGenerateBusinessSite_EmptyDescription(t *testing.T) {
	gen := &scriptedTextGen{}
	uc := newTestUsecase(gen)

	_, err := uc.GenerateBusinessSite(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrEmptyDescription)
	assert.Equal(t, 0, gen.businessCalls)
}
