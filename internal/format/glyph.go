package format

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// Charset selects how the ASCII pane renders byte values.
type Charset int

const (
	// CharsetASCII shows 0x20..0x7E and a dot for everything else.
	CharsetASCII Charset = iota
	// CharsetLatin1 decodes bytes as ISO 8859-1.
	CharsetLatin1
	// CharsetCP437 decodes bytes as IBM code page 437.
	CharsetCP437
	// CharsetCP1252 decodes bytes as Windows-1252.
	CharsetCP1252
)

// Placeholder is drawn for bytes with no printable glyph.
const Placeholder = '.'

func (c Charset) String() string {
	switch c {
	case CharsetASCII:
		return "ascii"
	case CharsetLatin1:
		return "latin1"
	case CharsetCP437:
		return "cp437"
	case CharsetCP1252:
		return "cp1252"
	default:
		return fmt.Sprintf("charset(%d)", int(c))
	}
}

// ParseCharset maps a config/flag name onto a Charset.
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii":
		return CharsetASCII, nil
	case "latin1", "iso8859-1", "iso-8859-1":
		return CharsetLatin1, nil
	case "cp437", "ibm437":
		return CharsetCP437, nil
	case "cp1252", "windows-1252":
		return CharsetCP1252, nil
	default:
		return CharsetASCII, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
}

func (c Charset) table() *charmap.Charmap {
	switch c {
	case CharsetLatin1:
		return charmap.ISO8859_1
	case CharsetCP437:
		return charmap.CodePage437
	case CharsetCP1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// Glyph returns the rune drawn in the ASCII pane for b.
func (c Charset) Glyph(b byte) rune {
	if b >= 0x20 && b < 0x7F {
		return rune(b)
	}
	cm := c.table()
	if cm == nil {
		return Placeholder
	}
	r := cm.DecodeByte(b)
	if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
		return Placeholder
	}
	return r
}

// IsPrintableASCII reports whether b can be typed directly into the ASCII pane.
func IsPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x7F
}
