package extract

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTextValidUTF8PassesThrough(t *testing.T) {
	input := "plain ascii and some UTF-8: héllo wörld ✓"
	assert.Equal(t, input, DecodeText([]byte(input)))
}

func TestDecodeTextWindows1252(t *testing.T) {
	// “quoted” with Windows-1252 smart quotes and an en dash
	data := []byte{0x93, 'q', 'u', 'o', 't', 'e', 'd', 0x94, ' ', 0x96, ' ', 'x'}
	decoded := DecodeText(data)

	assert.Equal(t, "“quoted” – x", decoded)
}

func TestDecodeTextLatin1(t *testing.T) {
	// café in ISO 8859-1; 0xE9 also maps to é in Windows-1252, either
	// candidate yields the same text
	data := []byte{'c', 'a', 'f', 0xE9}
	assert.Equal(t, "café", DecodeText(data))
}

func TestDecodeTextNeverFails(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0xFF, 0xFE, 0x00},
		{0x81, 0x8D, 0x8F, 0x90, 0x9D}, // unmapped in Windows-1252
	}

	for _, data := range inputs {
		decoded := DecodeText(data)
		assert.True(t, utf8.ValidString(decoded), "output must be valid UTF-8 for %v", data)
	}
}
