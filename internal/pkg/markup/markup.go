// Package markup turns raw model output into standalone page documents.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var codeFence = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")

// StripFences extracts the payload from a triple-backtick code fence. Content
// without a fence is returned trimmed and otherwise untouched.
func StripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// ExtractBody reduces a fragment to body-level markup. Models occasionally
// return a full document despite the fragment-only contract; in that case the
// inner body markup is extracted, otherwise the fragment passes through.
func ExtractBody(fragment string) string {
	lower := strings.ToLower(fragment)
	if !strings.Contains(lower, "<html") && !strings.Contains(lower, "<body") {
		return fragment
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	inner, err := doc.Find("body").Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return fragment
	}

	return strings.TrimSpace(inner)
}

// WrapPage wraps body-level markup into a standalone document linking the
// shared stylesheet and deferred shared script. The title is a placeholder
// until navigation normalization stamps the real one.
func WrapPage(fragment string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Website</title>
<link rel="stylesheet" href="styles.css">
</head>
<body>
%s
<script src="script.js" defer></script>
</body>
</html>`, strings.TrimSpace(fragment))
}
