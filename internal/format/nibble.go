// Package format holds the byte-level codecs used by the editor: hex
// nibble arithmetic, ASCII-pane glyph decoding, and hexdump row layout.
package format

import (
	"fmt"
	"strings"
)

const hexUpper = "0123456789ABCDEF"

// IsHexDigit reports whether r is a valid hex digit in either case.
func IsHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}

// ParseHexDigit returns the 4-bit value of a hex digit.
func ParseHexDigit(r rune) (byte, error) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), nil
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, nil
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHexDigit, r)
	}
}

// ApplyHighNibble replaces the high nibble of b with v, keeping the low nibble.
//
//	ApplyHighNibble(0x41, 0x7) = 0x71
func ApplyHighNibble(b, v byte) byte {
	return (b & 0x0F) | (v&0x0F)<<4
}

// ApplyLowNibble replaces the low nibble of b with v, keeping the high nibble.
//
//	ApplyLowNibble(0x41, 0xF) = 0x4F
func ApplyLowNibble(b, v byte) byte {
	return (b & 0xF0) | (v & 0x0F)
}

// NibblesToByte combines two 4-bit values into a byte.
func NibblesToByte(hi, lo byte) byte {
	return (hi&0x0F)<<4 | (lo & 0x0F)
}

// HexDigits returns the two uppercase display digits of b.
func HexDigits(b byte) (hi, lo byte) {
	return hexUpper[b>>4], hexUpper[b&0x0F]
}

// ParseHexBytes decodes a string such as "de ad BE EF" or "deadbeef".
// Whitespace between digits is ignored.
func ParseHexBytes(s string) ([]byte, error) {
	clean := strings.Join(strings.Fields(s), "")
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	if len(clean)%2 != 0 {
		return nil, ErrOddHexLength
	}
	out := make([]byte, 0, len(clean)/2)
	for i := 0; i < len(clean); i += 2 {
		hi, err := ParseHexDigit(rune(clean[i]))
		if err != nil {
			return nil, err
		}
		lo, err := ParseHexDigit(rune(clean[i+1]))
		if err != nil {
			return nil, err
		}
		out = append(out, NibblesToByte(hi, lo))
	}
	return out, nil
}
