package entity

// GenerationRequest is one validated multi-page generation job.
type GenerationRequest struct {
	Description string
	PageCount   int
}

// ContactInfo holds contact details extracted verbatim from the site
// description. Values are never reformatted; links derived from them strip
// non-digit characters only in the href, never in the visible text.
type ContactInfo struct {
	Phone    string
	WhatsApp string
	Email    string
	Address  string
}

// HasAny reports whether at least one contact field is present.
func (c ContactInfo) HasAny() bool {
	return c.Phone != "" || c.WhatsApp != "" || c.Email != "" || c.Address != ""
}

// PhoneDigits returns the phone number reduced to its digits, for tel: hrefs.
func (c ContactInfo) PhoneDigits() string {
	return digitsOnly(c.Phone)
}

// WhatsAppDigits returns the number used for wa.me deep links: the WhatsApp
// number when present, otherwise the phone number.
func (c ContactInfo) WhatsAppDigits() string {
	if c.WhatsApp != "" {
		return digitsOnly(c.WhatsApp)
	}
	return digitsOnly(c.Phone)
}

func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// SitePlan is the blueprint text produced by the planning call. It is opaque:
// consumed only as context for later prompts, never parsed.
type SitePlan string

// ImageDirective is a placeholder image reference parsed out of a page,
// awaiting resolution to a real photo URL.
type ImageDirective struct {
	Width    int
	Height   int
	Keywords string
}

// Orientation implied by the directive's aspect ratio.
func (d ImageDirective) Orientation() string {
	if d.Height > d.Width {
		return "portrait"
	}
	return "landscape"
}

// SiteBundle is the terminal artifact returned to the caller. Pages and HTML
// are index-aligned 1:1.
type SiteBundle struct {
	Pages []string `json:"pages"`
	HTML  []string `json:"html"`
	CSS   string   `json:"css"`
	JS    string   `json:"js"`
}

// ModelHint selects which configured model a generation call should use.
type ModelHint string

const (
	ModelHintContent ModelHint = "content"
	ModelHintStyle   ModelHint = "style"
)
