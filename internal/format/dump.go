package format

import "strings"

// DefaultWidth is the number of bytes per row used when none is configured.
const DefaultWidth = 16

// FormatRow renders one hexdump row:
//
//	00000010  41 42 43 00 ...  |ABC.|
//
// Short rows are padded so the ASCII column stays aligned with full rows.
func FormatRow(off int64, row []byte, width int, cs Charset) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var sb strings.Builder
	sb.Grow(10 + width*4 + 4)

	writeOffset(&sb, off)
	sb.WriteString("  ")
	for i := 0; i < width; i++ {
		if i < len(row) {
			hi, lo := HexDigits(row[i])
			sb.WriteByte(hi)
			sb.WriteByte(lo)
		} else {
			sb.WriteString("  ")
		}
		sb.WriteByte(' ')
	}
	sb.WriteString(" |")
	for _, b := range row {
		sb.WriteRune(cs.Glyph(b))
	}
	sb.WriteByte('|')
	return sb.String()
}

// FormatOffset renders an offset as eight (or more) uppercase hex digits.
func FormatOffset(off int64) string {
	var sb strings.Builder
	writeOffset(&sb, off)
	return sb.String()
}

func writeOffset(sb *strings.Builder, off int64) {
	var digits [16]byte
	n := 0
	v := uint64(off)
	for v > 0 || n < 8 {
		digits[n] = hexUpper[v&0x0F]
		v >>= 4
		n++
		if n == len(digits) {
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
}

// HexString renders bytes as space-separated uppercase pairs ("DE AD BE EF").
func HexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		hi, lo := HexDigits(v)
		sb.WriteByte(hi)
		sb.WriteByte(lo)
	}
	return sb.String()
}
