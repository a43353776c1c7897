// Package postprocess enforces the structural invariants of a generated
// bundle: real contact data wired into links, call-to-action elements with
// working targets, one canonical brand and identical navigation on every
// page, and placeholder image directives resolved to real photography.
//
// Stages run per page in a fixed order (contacts, CTAs), then the batch
// normalization stage over the whole page set, then image resolution. Each
// stage is a pure document transformation.
package postprocess

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/futig/sitegen-backend/internal/entity"
)

// Pipeline applies the post-processing stages for one request. It carries the
// request's extracted contact info and brand override and no other state.
type Pipeline struct {
	contact entity.ContactInfo
	brand   string
}

func New(info entity.ContactInfo, brand string) *Pipeline {
	return &Pipeline{contact: info, brand: brand}
}

func parse(page string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(page))
}

func render(doc *goquery.Document) (string, error) {
	out, err := doc.Html()
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(strings.TrimSpace(strings.ToLower(out)), "<!doctype") {
		out = "<!DOCTYPE html>" + out
	}
	return out, nil
}
