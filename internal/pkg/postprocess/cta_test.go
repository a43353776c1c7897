package postprocess

import (
	"testing"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewireCTAs_PlaceholderAnchors(t *testing.T) {
	page := `<html><body>
<a href="#">Order Now</a>
<a href="javascript:void(0)" class="btn">Learn more</a>
<a href="page2.html">Book a table</a>
</body></html>`

	p := New(entity.ContactInfo{Phone: "+1 555"}, "")

	out, err := p.RewireCTAs(page)
	require.NoError(t, err)

	assert.Contains(t, out, `href="https://wa.me/1555">Order Now`)
	assert.Contains(t, out, `href="https://wa.me/1555" class="btn"`)
	assert.Contains(t, out, `href="page2.html">Book a table`, "real targets untouched")
}

func TestRewireCTAs_TargetPrecedence(t *testing.T) {
	page := `<html><body><a href="#">Contact us</a></body></html>`

	tests := []struct {
		name string
		info entity.ContactInfo
		want string
	}{
		{"whatsapp first", entity.ContactInfo{WhatsApp: "111", Phone: "222", Email: "a@b.c"}, `href="https://wa.me/111"`},
		{"phone backs the whatsapp link", entity.ContactInfo{Phone: "222", Email: "a@b.c"}, `href="https://wa.me/222"`},
		{"then email", entity.ContactInfo{Email: "a@b.c"}, `href="mailto:a@b.c"`},
		{"anchor fallback", entity.ContactInfo{}, `href="#contact"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(tt.info, "").RewireCTAs(page)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRewireCTAs_ButtonBecomesAnchor(t *testing.T) {
	page := `<html><body>
<button class="cta-main">Get Started</button>
<form><button type="submit">Subscribe</button></form>
</body></html>`

	p := New(entity.ContactInfo{Phone: "555"}, "")

	out, err := p.RewireCTAs(page)
	require.NoError(t, err)

	assert.Contains(t, out, `<a class="cta-main" href="https://wa.me/555">Get Started</a>`)
	assert.Contains(t, out, `<button type="submit">Subscribe</button>`, "form submit buttons survive")
}

func TestRewireCTAs_Idempotent(t *testing.T) {
	page := `<html><body><a href="#">Order Now</a><button>Call us</button></body></html>`

	p := New(entity.ContactInfo{Phone: "555"}, "")

	once, err := p.RewireCTAs(page)
	require.NoError(t, err)

	twice, err := p.RewireCTAs(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestRewireCTAs_NonCTAAnchorsUntouched(t *testing.T) {
	page := `<html><body><a href="#">Read our story</a></body></html>`

	p := New(entity.ContactInfo{Phone: "555"}, "")

	out, err := p.RewireCTAs(page)
	require.NoError(t, err)
	assert.Contains(t, out, `href="#">Read our story`)
}
