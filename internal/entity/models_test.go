package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactInfo_Digits(t *testing.T) {
	info := ContactInfo{Phone: "(07) 00-123-456"}

	assert.Equal(t, "0700123456", info.PhoneDigits())
	assert.Equal(t, "0700123456", info.WhatsAppDigits(), "WhatsApp falls back to phone")
}

func TestContactInfo_WhatsAppPreferred(t *testing.T) {
	info := ContactInfo{Phone: "111", WhatsApp: "+44 222"}

	assert.Equal(t, "44222", info.WhatsAppDigits())
}

func TestContactInfo_HasAny(t *testing.T) {
	assert.False(t, ContactInfo{}.HasAny())
	assert.True(t, ContactInfo{Address: "somewhere"}.HasAny())
}

func TestImageDirective_Orientation(t *testing.T) {
	assert.Equal(t, "landscape", ImageDirective{Width: 800, Height: 600}.Orientation())
	assert.Equal(t, "portrait", ImageDirective{Width: 600, Height: 800}.Orientation())
	assert.Equal(t, "landscape", ImageDirective{Width: 600, Height: 600}.Orientation())
}
