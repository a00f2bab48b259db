package synth

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Escape rewrites assembled source text so that every character outside the
// 7-bit range is encoded as a \uXXXX escape, making the output safe under
// any single-byte file encoding. Characters above the basic multilingual
// plane are escaped as their surrogate pair, matching how a Java source
// file would carry them.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
			continue
		}
		for _, unit := range utf16.Encode([]rune{r}) {
			fmt.Fprintf(&b, `\u%04X`, unit)
		}
	}
	return b.String()
}
