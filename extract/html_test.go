package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLTitleAndText(t *testing.T) {
	html := `<html>
<head><title>  Payer Companion Guide  </title></head>
<body>
  <h1>Claim Edits</h1>
  <p>Reject claims missing segment NM1.</p>
</body>
</html>`

	content, err := ExtractHTML(html)
	require.NoError(t, err)

	assert.Equal(t, "Payer Companion Guide", content.Title)
	assert.Contains(t, content.Text, "Claim Edits")
	assert.Contains(t, content.Text, "Reject claims missing segment NM1.")
}

func TestExtractHTMLMissingTitle(t *testing.T) {
	content, err := ExtractHTML("<html><body><p>no title here</p></body></html>")
	require.NoError(t, err)

	assert.Equal(t, UntitledDocument, content.Title)
	assert.Equal(t, "no title here", content.Text)
}

func TestExtractHTMLStripsScriptsAndStyles(t *testing.T) {
	html := `<html><head><title>t</title><style>body { color: red; }</style></head>
<body>
  <script>var hidden = "secret";</script>
  <noscript>enable js</noscript>
  <p>visible</p>
</body></html>`

	content, err := ExtractHTML(html)
	require.NoError(t, err)

	assert.Equal(t, "visible", content.Text)
	assert.NotContains(t, content.Text, "secret")
	assert.NotContains(t, content.Text, "color: red")
	assert.NotContains(t, content.Text, "enable js")
}

func TestExtractHTMLCollapsesBlankLines(t *testing.T) {
	html := `<html><body>
<p>first</p>



<p>second</p>
</body></html>`

	content, err := ExtractHTML(html)
	require.NoError(t, err)

	assert.Equal(t, "first\n\nsecond", content.Text)
}

func TestIsHTMLContentType(t *testing.T) {
	assert.True(t, IsHTMLContentType("text/html"))
	assert.True(t, IsHTMLContentType("text/html; charset=utf-8"))
	assert.True(t, IsHTMLContentType("application/xhtml+xml"))
	assert.True(t, IsHTMLContentType("TEXT/HTML"))
	assert.False(t, IsHTMLContentType("application/pdf"))
	assert.False(t, IsHTMLContentType("text/plain"))
}
