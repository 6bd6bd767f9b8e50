package barcodegen

import (
	"fmt"
	"strings"
)

// EncodeOptions configures symbol encoding. The zero value is valid and
// selects every default.
type EncodeOptions struct {
	// ErrorCorrection specifies the QR error correction level: L, M, Q or H.
	// Empty means M.
	ErrorCorrection string

	// ForceCodeSet forces a single Code 128 code set: A, B or C.
	ForceCodeSet string

	// DataMatrixShape restricts DataMatrix symbol sizes: square (default),
	// rectangle or any.
	DataMatrixShape string

	// FoldCompatibility applies Unicode NFKC folding before sanitization,
	// so that e.g. fullwidth digits become ASCII digits instead of being
	// removed.
	FoldCompatibility bool
}

// Validate checks option values that do not depend on the symbology.
func (o *EncodeOptions) Validate() error {
	if o == nil {
		return nil
	}
	switch strings.ToUpper(o.ErrorCorrection) {
	case "", "L", "M", "Q", "H":
	default:
		return fmt.Errorf("%w: error correction %q", ErrInvalidOption, o.ErrorCorrection)
	}
	switch strings.ToUpper(o.ForceCodeSet) {
	case "", "A", "B", "C":
	default:
		return fmt.Errorf("%w: code set %q", ErrInvalidOption, o.ForceCodeSet)
	}
	switch strings.ToLower(o.DataMatrixShape) {
	case "", "square", "rectangle", "any":
	default:
		return fmt.Errorf("%w: datamatrix shape %q", ErrInvalidOption, o.DataMatrixShape)
	}
	return nil
}

// Encoder turns a sanitized payload into an abstract Symbol.
type Encoder interface {
	// Encode encodes the given contents. opts may be nil.
	Encode(contents string, opts *EncodeOptions) (Symbol, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(contents string, opts *EncodeOptions) (Symbol, error)

// Encode calls f(contents, opts).
func (f EncoderFunc) Encode(contents string, opts *EncodeOptions) (Symbol, error) {
	return f(contents, opts)
}
