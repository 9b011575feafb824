// Package strutil contains string helpers shared by the string synthesizer.
package strutil

import (
	"strconv"
	"strings"
)

// EnsureLength repeats or truncates text so its length lies within the given
// bounds. A nil minimum is zero and a nil maximum is the length of text. When
// both bounds are zero the text is returned unchanged. A maximum below the
// minimum is raised to the minimum.
func EnsureLength(text string, minLength, maxLength *int) string {
	lo := 0
	if minLength != nil {
		lo = *minLength
	}
	hi := len(text)
	if maxLength != nil {
		hi = *maxLength
	}
	if max(lo, hi) == 0 {
		return text
	}
	if hi < lo {
		hi = lo
	}
	if len(text) < lo && len(text) > 0 {
		text = strings.Repeat(text, (lo+len(text)-1)/len(text))
	}
	if len(text) > hi {
		text = text[:hi]
	}
	return text
}

// ToBinary renders every byte of text in base 2, separated by spaces.
func ToBinary(text string) string {
	parts := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		parts[i] = strconv.FormatInt(int64(text[i]), 2)
	}
	return strings.Join(parts, " ")
}
