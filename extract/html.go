package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UntitledDocument is the fallback name for HTML pages without a <title>.
const UntitledDocument = "Untitled Document"

// ExtractHTML parses decoded HTML and returns the title text (or the
// placeholder when absent) plus the visible text content with script and
// style elements removed.
func ExtractHTML(html string) (*Content, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = UntitledDocument
	}

	doc.Find("script, style, noscript").Remove()

	var body string
	if sel := doc.Find("body"); sel.Length() > 0 {
		body = sel.Text()
	} else {
		body = doc.Text()
	}

	return &Content{
		Title: title,
		Text:  collapseWhitespace(body),
	}, nil
}

// collapseWhitespace trims lines and squeezes runs of blank lines down to
// one, which keeps the extracted text readable for prompting.
func collapseWhitespace(text string) string {
	var lines []string
	blank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(lines) > 0 {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		blank = false
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
