package barcodegen

import (
	"fmt"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// printable matches runes that survive sanitization.
func printable(r rune) bool { return r >= 0x20 && r <= 0x7E }

// Sanitize removes control characters and every rune outside printable
// ASCII, then trims surrounding whitespace. With fold set, NFKC
// compatibility folding runs first.
func Sanitize(raw string, fold bool) string {
	var t transform.Transformer = runes.Remove(runes.Predicate(func(r rune) bool { return !printable(r) }))
	if fold {
		t = transform.Chain(norm.NFKC, t)
	}
	// Neither step reports errors for string input.
	out, _, _ := transform.String(t, raw)
	return strings.TrimSpace(out)
}

// Validate sanitizes raw and checks it against the character constraints of
// symbology s, using the default options.
func Validate(s Symbology, raw string) (string, error) {
	return ValidateWith(s, raw, nil)
}

// ValidateWith sanitizes raw and checks it against the character
// constraints of symbology s. It returns the sanitized text.
func ValidateWith(s Symbology, raw string, opts *EncodeOptions) (string, error) {
	if !s.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSymbology, s)
	}
	fold := opts != nil && opts.FoldCompatibility
	text := Sanitize(raw, fold)
	if text == "" {
		return "", ErrEmptyPayload
	}
	switch s {
	case EAN13:
		for i := 0; i < len(text); i++ {
			if text[i] < '0' || text[i] > '9' {
				return "", fmt.Errorf("%w: ean13 accepts digits only, found %q at %d", ErrInvalidCharset, text[i], i)
			}
		}
		if len(text) != 12 && len(text) != 13 {
			return "", fmt.Errorf("%w: ean13 needs 12 or 13 digits, got %d", ErrInvalidLength, len(text))
		}
	case Code128:
		// Sanitization already restricted the text to printable ASCII.
		// GS1 groups are parsed by the encoder.
	case QR, DataMatrix:
	}
	return text, nil
}
