// Package datamatrix adapts the ECC 200 encoder to the barcodegen registry.
package datamatrix

import (
	barcodegen "github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/datamatrix/encoder"
)

// QuietZone is the blank margin, in modules, on every side of a symbol.
const QuietZone = 1

// Encoder encodes Data Matrix symbols.
type Encoder struct{}

// NewEncoder creates a new Data Matrix encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode encodes contents into the smallest symbol allowed by
// opts.DataMatrixShape, square by default.
func (e *Encoder) Encode(contents string, opts *barcodegen.EncodeOptions) (barcodegen.Symbol, error) {
	shape := encoder.ShapeHintForceSquare
	if opts != nil {
		var err error
		if shape, err = encoder.ParseShapeHint(opts.DataMatrixShape); err != nil {
			return nil, err
		}
	}
	sym, err := encoder.EncodeWithShape(contents, shape)
	if err != nil {
		return nil, err
	}
	return barcodegen.NewMatrixSymbol(sym.Matrix, QuietZone)
}
