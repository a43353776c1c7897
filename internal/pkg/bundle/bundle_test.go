package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenames(t *testing.T) {
	assert.Equal(t, []string{"page1.html"}, Filenames(1))
	assert.Equal(t, []string{"page1.html", "page2.html", "page3.html"}, Filenames(3))
}

func TestAssemble(t *testing.T) {
	b, err := Assemble([]string{"page1.html"}, []string{"<html></html>"}, "css", "js")
	require.NoError(t, err)

	assert.Equal(t, []string{"page1.html"}, b.Pages)
	assert.Equal(t, []string{"<html></html>"}, b.HTML)
	assert.Equal(t, "css", b.CSS)
	assert.Equal(t, "js", b.JS)
}

func TestAssemble_LengthMismatch(t *testing.T) {
	_, err := Assemble([]string{"page1.html", "page2.html"}, []string{"<html></html>"}, "", "")
	assert.ErrorIs(t, err, entity.ErrBundleMismatch)
}

func TestWriteZip_RoundTrip(t *testing.T) {
	b := &entity.SiteBundle{
		Pages: []string{"page1.html", "page2.html"},
		HTML:  []string{"<html>one</html>", "<html>two</html>"},
		CSS:   ".hero {}",
		JS:    "console.log('x');",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, b))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	entries := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = string(data)
	}

	assert.Len(t, entries, 4)
	assert.Equal(t, "<html>one</html>", entries["page1.html"])
	assert.Equal(t, "<html>two</html>", entries["page2.html"])
	assert.Equal(t, ".hero {}", entries["styles.css"])
	assert.Equal(t, "console.log('x');", entries["script.js"])
}

func TestWriteZip_Mismatch(t *testing.T) {
	b := &entity.SiteBundle{Pages: []string{"page1.html"}}

	var buf bytes.Buffer
	assert.ErrorIs(t, WriteZip(&buf, b), entity.ErrBundleMismatch)
}
