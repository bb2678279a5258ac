package latin1

import "strings"

// Encode maps every character of the text to a single octet carrying its
// code point. Code points above 0xFF don't fit into an octet and are
// truncated, so the caller is responsible for feeding ASCII/Latin-1 text
// only. The resulting slice is always exactly one byte per character.
func Encode(text string) []byte {
	buff := make([]byte, 0, len(text))

	for _, char := range text {
		buff = append(buff, byte(char))
	}

	return buff
}

// Decode is the exact inverse of Encode: every octet becomes the character
// with the same code point. Unlike a plain string(data) conversion, octets
// above 0x7F are widened to their code points instead of being interpreted
// as (broken) UTF-8 sequences.
func Decode(data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data))

	for _, octet := range data {
		builder.WriteRune(rune(octet))
	}

	return builder.String()
}
