package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const pageMarker = "🅿️ Start of Page %d"

// ExtractPDF parses a PDF payload and concatenates per-page text. Every
// page contributes exactly one 1-based page marker, in order; pages with no
// text contribute only the marker, and blank lines inside a page are
// dropped. Returns an error for anything that is not a valid PDF.
func ExtractPDF(data []byte) (text string, err error) {
	// The parser panics on some malformed files; surface those as errors
	// so the fetcher boundary can treat them as a failed extraction.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		builder.WriteString(fmt.Sprintf(pageMarker, i))
		builder.WriteString("\n")

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		if cleaned := cleanPageText(pageText); cleaned != "" {
			builder.WriteString(cleaned)
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}

// cleanPageText trims each line and drops blank ones, rejoining with
// single newlines.
func cleanPageText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
