package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// candidateEncodings are tried in order for payloads that are not valid
// UTF-8. Windows-1252 first since it is the most common mislabeled legacy
// encoding on the web, then the ISO Latin variants.
var candidateEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
	charmap.ISO8859_15,
}

// DecodeText decodes a raw payload to a UTF-8 string. Valid UTF-8 passes
// through untouched; otherwise each candidate encoding is tried in order
// and the first clean decode wins. A candidate whose output contains the
// replacement character is treated as a failed decode. As a last resort the
// payload is decoded lossily, so this function never fails.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	for _, enc := range candidateEncodings {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		if !strings.ContainsRune(string(decoded), utf8.RuneError) {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(data), "")
}
