// Package buf contains bounds and byte-order helpers shared by the editing
// engine and the value inspector.
package buf

import "encoding/binary"

// Widths lists the integer sizes, in bytes, that Uint and Int decode.
var Widths = []int{1, 2, 4, 8}

// Uint decodes the first size bytes of b as an unsigned integer in the
// given byte order. ok is false when b is too short or size is not one of
// Widths.
func Uint(b []byte, size int, order binary.ByteOrder) (v uint64, ok bool) {
	if size <= 0 || !Has(b, 0, size) {
		return 0, false
	}
	switch size {
	case 1:
		return uint64(b[0]), true
	case 2:
		return uint64(order.Uint16(b)), true
	case 4:
		return uint64(order.Uint32(b)), true
	case 8:
		return order.Uint64(b), true
	}
	return 0, false
}

// Int is Uint sign-extended from size bytes.
func Int(b []byte, size int, order binary.ByteOrder) (int64, bool) {
	u, ok := Uint(b, size, order)
	if !ok {
		return 0, false
	}
	shift := 64 - 8*uint(size)
	return int64(u<<shift) >> shift, true
}
