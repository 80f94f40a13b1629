package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	html, err := Render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestExcerptStripsMarkup(t *testing.T) {
	got := Excerpt("# Apply early\n\nDeadlines *matter* for [most awards](https://example.com)", 200)
	assert.Equal(t, "Apply early Deadlines matter for most awards", got)
}

func TestExcerptTruncatesOnWordBoundary(t *testing.T) {
	source := strings.Repeat("scholarship deadlines ", 50)
	got := Excerpt(source, 40)

	require.True(t, strings.HasSuffix(got, "…"))
	body := strings.TrimSuffix(got, "…")
	assert.LessOrEqual(t, len([]rune(body)), 40)
	for _, word := range strings.Fields(body) {
		assert.Contains(t, []string{"scholarship", "deadlines"}, word, "truncation must not cut words")
	}
}

func TestExcerptShortContentUntouched(t *testing.T) {
	assert.Equal(t, "Short note.", Excerpt("Short note.", 160))
	assert.Equal(t, "", Excerpt("", 160))
}
