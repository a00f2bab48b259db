package synth

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape_ASCIIPassesThrough(t *testing.T) {
	source := "package demo;\n\npublic class AImpl extends demo.A {\n\n}"
	assert.Equal(t, source, Escape(source))
}

func TestEscape_NonASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"latin supplement", "café", `caf\u00E9`},
		{"cyrillic", "пакет", `\u043F\u0430\u043A\u0435\u0442`},
		{"boundary below", "\u007F", "\u007F"},
		{"boundary above", "\u0080", `\u0080`},
		{"mixed", "aéb", `a\u00E9b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestEscape_SurrogatePair(t *testing.T) {
	// U+1F600 sits above the BMP and must escape as its surrogate pair.
	assert.Equal(t, `\uD83D\uDE00`, Escape("\U0001F600"))
}

// decodeEscapes reverses the \uXXXX encoding to verify the round trip.
func decodeEscapes(t *testing.T, s string) string {
	var units []uint16
	var out []rune
	flush := func() {
		if len(units) > 0 {
			out = append(out, utf16.Decode(units)...)
			units = nil
		}
	}
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], `\u`) {
			value, err := strconv.ParseUint(s[i+2:i+6], 16, 16)
			require.NoError(t, err)
			units = append(units, uint16(value))
			i += 6
			continue
		}
		flush()
		out = append(out, rune(s[i]))
		i++
	}
	flush()
	return string(out)
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"package päckage;",
		"класс Test",
		"plain ascii only",
		"emoji \U0001F680 type",
	}

	for _, input := range inputs {
		escaped := Escape(input)
		assert.Equal(t, input, decodeEscapes(t, escaped))
	}
}
