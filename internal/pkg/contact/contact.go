// Package contact extracts contact details and an optional brand name from a
// site description. It is the single source of truth for contact data: the
// generation stages never invent or mutate real-world contact details.
package contact

import (
	"bufio"
	"strings"

	"github.com/futig/sitegen-backend/internal/entity"
)

// Extract scans the description line-by-line for "Label: value" pairs and
// returns the collected contact info plus the business name override, if any.
// Labels match case-insensitively; values are kept verbatim. Extract never
// fails: missing fields are simply absent.
func Extract(description string) (entity.ContactInfo, string) {
	var info entity.ContactInfo
	var businessName string

	scanner := bufio.NewScanner(strings.NewReader(description))
	for scanner.Scan() {
		line := scanner.Text()

		label, value, ok := splitLabelled(line)
		if !ok {
			continue
		}

		switch label {
		case "phone":
			if info.Phone == "" {
				info.Phone = value
			}
		case "whatsapp":
			if info.WhatsApp == "" {
				info.WhatsApp = value
			}
		case "email":
			if info.Email == "" {
				info.Email = value
			}
		case "address":
			if info.Address == "" {
				info.Address = value
			}
		case "business name":
			if businessName == "" {
				businessName = value
			}
		}
	}

	return info, businessName
}

// splitLabelled splits "Label: value" into a lowercased label and the value
// trimmed of surrounding whitespace but otherwise untouched.
func splitLabelled(line string) (string, string, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}

	label := strings.ToLower(strings.TrimSpace(line[:idx]))
	value := strings.TrimSpace(line[idx+1:])
	if label == "" || value == "" {
		return "", "", false
	}

	return label, value, true
}
