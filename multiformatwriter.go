package barcodegen

import "fmt"

// MultiFormatEncoder is a dispatcher that selects the registered Encoder
// for the requested symbology.
type MultiFormatEncoder struct{}

// NewMultiFormatEncoder creates a new multi-format encoder.
func NewMultiFormatEncoder() *MultiFormatEncoder {
	return &MultiFormatEncoder{}
}

// encoderFactory is a function that creates an Encoder.
type encoderFactory func() Encoder

// encoderFactories is filled from init functions and read-only afterwards.
var encoderFactories = map[Symbology]encoderFactory{}

// RegisterEncoder registers an encoder factory for the given symbology.
// It is meant to be called from init functions.
func RegisterEncoder(s Symbology, factory func() Encoder) {
	encoderFactories[s] = factory
}

// Registered reports whether an encoder is registered for s.
func Registered(s Symbology) bool {
	_, ok := encoderFactories[s]
	return ok
}

// Encode encodes sanitized contents into a symbol of the given symbology.
func (e *MultiFormatEncoder) Encode(s Symbology, contents string, opts *EncodeOptions) (Symbol, error) {
	factory, ok := encoderFactories[s]
	if !ok {
		return nil, fmt.Errorf("no encoder registered for %s: %w", s, ErrUnsupportedSymbology)
	}
	return factory().Encode(contents, opts)
}

// EncodeSymbol is a convenience function that encodes sanitized contents
// with the registered encoder for s.
func EncodeSymbol(s Symbology, contents string, opts *EncodeOptions) (Symbol, error) {
	return NewMultiFormatEncoder().Encode(s, contents, opts)
}
