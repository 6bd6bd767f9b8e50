package barcodegen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharset is returned when the payload contains characters the
	// symbology cannot encode.
	ErrInvalidCharset = errors.New("invalid character set")

	// ErrEmptyPayload is returned when the payload sanitizes to nothing.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrInvalidCheckDigit is returned when a supplied EAN-13 check digit does
	// not match the one computed from the first 12 digits.
	ErrInvalidCheckDigit = errors.New("invalid check digit")

	// ErrInvalidLength is returned when an EAN-13 payload is not 12 or 13
	// digits. It wraps ErrInvalidCharset, so a length error also matches the
	// charset sentinel.
	ErrInvalidLength = fmt.Errorf("%w: invalid payload length", ErrInvalidCharset)

	// ErrPayloadTooLarge is returned when the payload exceeds the capacity of
	// the largest symbol available.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrUnsupportedSymbology is returned for unknown symbologies or ones with
	// no registered encoder.
	ErrUnsupportedSymbology = errors.New("unsupported symbology")

	// ErrInvalidOption is returned for out-of-range encode or render options.
	ErrInvalidOption = errors.New("invalid option")
)

// errorKinds is ordered most specific first.
var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidLength, "InvalidLength"},
	{ErrInvalidCharset, "InvalidCharset"},
	{ErrEmptyPayload, "EmptyPayload"},
	{ErrInvalidCheckDigit, "InvalidCheckDigit"},
	{ErrPayloadTooLarge, "PayloadTooLarge"},
	{ErrUnsupportedSymbology, "UnsupportedSymbology"},
	{ErrInvalidOption, "InvalidOption"},
}

// ErrorKind names the kind of err, e.g. "InvalidCheckDigit". Errors outside
// the taxonomy are reported as "Internal" and nil as "".
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the engine.
func IsInputError(err error) bool {
	kind := ErrorKind(err)
	return kind != "" && kind != "Internal"
}
