package format

import "errors"

var (
	// ErrInvalidHexDigit indicates a rune outside [0-9a-fA-F] was offered as a nibble.
	ErrInvalidHexDigit = errors.New("format: invalid hex digit")
	// ErrOddHexLength indicates a hex byte string had an unpaired digit.
	ErrOddHexLength = errors.New("format: odd number of hex digits")
	// ErrUnknownCharset indicates an unsupported charset name.
	ErrUnknownCharset = errors.New("format: unknown charset")
)
