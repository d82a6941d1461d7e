package extract

import (
	"strings"
)

// Content is the result of extracting text from a raw payload.
// Title is only populated for HTML payloads that carry a <title>.
type Content struct {
	Title string
	Text  string
}

// Extract converts a raw payload into plain text based on the declared
// content type. PDF payloads are parsed page by page; HTML payloads yield
// the page title and visible text; everything else is decoded as text with
// encoding fallback. The transformation is pure.
func Extract(data []byte, contentType string) (*Content, error) {
	ct := strings.ToLower(contentType)

	if strings.Contains(ct, "application/pdf") {
		text, err := ExtractPDF(data)
		if err != nil {
			return nil, err
		}
		return &Content{Text: text}, nil
	}

	decoded := DecodeText(data)

	if IsHTMLContentType(ct) {
		return ExtractHTML(decoded)
	}

	return &Content{Text: decoded}, nil
}

// IsHTMLContentType reports whether a declared content type indicates HTML.
func IsHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml")
}
