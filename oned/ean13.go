package oned

import (
	"fmt"

	barcodegen "github.com/ericlevine/barcodegen"
)

const (
	ean13CodeWidth = 3 + (7 * 6) + 5 + (7 * 6) + 3 // = 95

	// EAN13QuietZone is the blank margin, in units, on each side.
	EAN13QuietZone = 11
)

// EAN13Encoder encodes EAN-13 barcodes.
type EAN13Encoder struct{}

// NewEAN13Encoder creates a new EAN-13 encoder.
func NewEAN13Encoder() *EAN13Encoder {
	return &EAN13Encoder{}
}

// Encode encodes 12 digits (check digit computed) or 13 digits (check digit
// verified) into an EAN-13 symbol.
func (e *EAN13Encoder) Encode(contents string, opts *barcodegen.EncodeOptions) (barcodegen.Symbol, error) {
	full, err := CheckEAN13Contents(contents)
	if err != nil {
		return nil, err
	}
	widths := EAN13Widths(full)
	codes := make([]int, len(full))
	for i := range full {
		codes[i] = int(full[i] - '0')
	}
	return barcodegen.NewBarSymbol(widths, EAN13QuietZone, full, codes)
}

// CheckEAN13Contents validates contents and returns the 13-digit payload.
// A 12-digit input gets its check digit appended; a 13-digit input must
// carry the correct one.
func CheckEAN13Contents(contents string) (string, error) {
	if contents == "" {
		return "", barcodegen.ErrEmptyPayload
	}
	if err := CheckUPCEANDigits(contents); err != nil {
		return "", err
	}
	switch len(contents) {
	case 12:
		return contents + string(rune('0'+GetStandardUPCEANChecksum(contents))), nil
	case 13:
		want := GetStandardUPCEANChecksum(contents[:12])
		if got := int(contents[12] - '0'); got != want {
			return "", fmt.Errorf("%w: got %d, computed %d", barcodegen.ErrInvalidCheckDigit, got, want)
		}
		return contents, nil
	default:
		return "", fmt.Errorf("%w: requested contents should be 12 or 13 digits long, but got %d",
			barcodegen.ErrInvalidLength, len(contents))
	}
}

// CheckUPCEANDigits validates that a string contains only digits.
func CheckUPCEANDigits(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: contents contain non-digit character: %q", barcodegen.ErrInvalidCharset, s[i])
		}
	}
	return nil
}

// GetStandardUPCEANChecksum computes the UPC/EAN check digit for a string of
// digits without the check digit. Weights alternate 3, 1 from the right.
func GetStandardUPCEANChecksum(s string) int {
	sum := 0
	for i := len(s) - 1; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	sum *= 3
	for i := len(s) - 2; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	return (1000 - sum) % 10
}

// EAN13Widths returns the 59 alternating bar/space widths of a valid
// 13-digit payload, starting with the left guard bar.
func EAN13Widths(contents string) []int {
	widths := make([]int, 0, 59)
	widths = append(widths, UPCEANStartEndPattern...)

	parities := ean13FirstDigitEncodings[contents[0]-'0']
	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		widths = append(widths, LAndGPatterns[digit]...)
	}

	widths = append(widths, UPCEANMiddlePattern...)

	for i := 7; i <= 12; i++ {
		widths = append(widths, LPatterns[contents[i]-'0']...)
	}

	return append(widths, UPCEANStartEndPattern...)
}
