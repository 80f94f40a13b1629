// Package markdown renders article content for derived fields.
package markdown

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render converts markdown to HTML. Invalid markdown never fails; goldmark
// degrades to paragraphs.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Excerpt derives a plain-text excerpt from markdown content: rendered,
// stripped of tags, whitespace collapsed, cut at limit runes on a word
// boundary. Used when an editor saves a post without an excerpt.
func Excerpt(source string, limit int) string {
	html, err := Render(source)
	if err != nil {
		html = source
	}
	text := collapseWhitespace(stripTags(html))
	if limit <= 0 || len([]rune(text)) <= limit {
		return text
	}

	runes := []rune(text)[:limit]
	if cut := lastSpace(runes); cut > 0 {
		runes = runes[:cut]
	}
	return strings.TrimRightFunc(string(runes), unicode.IsPunct) + "…"
}

func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return 0
}
