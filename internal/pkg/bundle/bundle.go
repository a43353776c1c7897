// Package bundle assembles and archives the final site artifact.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/futig/sitegen-backend/internal/entity"
)

const (
	StylesheetName = "styles.css"
	ScriptName     = "script.js"
)

// Filenames returns the fixed page filenames for an n-page site.
func Filenames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("page%d.html", i+1)
	}
	return names
}

// Assemble builds the terminal bundle, guaranteeing the 1:1 index
// correspondence between filenames and page HTML.
func Assemble(filenames, pages []string, css, js string) (*entity.SiteBundle, error) {
	if len(filenames) != len(pages) {
		return nil, fmt.Errorf("%w: %d filenames, %d pages", entity.ErrBundleMismatch, len(filenames), len(pages))
	}

	return &entity.SiteBundle{
		Pages: filenames,
		HTML:  pages,
		CSS:   css,
		JS:    js,
	}, nil
}

// WriteZip streams the bundle as a website.zip archive: every page plus the
// shared stylesheet and script.
func WriteZip(w io.Writer, b *entity.SiteBundle) error {
	if len(b.Pages) != len(b.HTML) {
		return fmt.Errorf("%w: %d pages, %d html documents", entity.ErrBundleMismatch, len(b.Pages), len(b.HTML))
	}

	zw := zip.NewWriter(w)

	for i, name := range b.Pages {
		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", name, err)
		}
		if _, err := f.Write([]byte(b.HTML[i])); err != nil {
			return fmt.Errorf("write zip entry %s: %w", name, err)
		}
	}

	css, err := zw.Create(StylesheetName)
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", StylesheetName, err)
	}
	if _, err := css.Write([]byte(b.CSS)); err != nil {
		return fmt.Errorf("write zip entry %s: %w", StylesheetName, err)
	}

	js, err := zw.Create(ScriptName)
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", ScriptName, err)
	}
	if _, err := js.Write([]byte(b.JS)); err != nil {
		return fmt.Errorf("write zip entry %s: %w", ScriptName, err)
	}

	return zw.Close()
}
