// Package qrcode adapts github.com/skip2/go-qrcode to the barcodegen
// registry. The library selects the smallest version and the mask; this
// package extracts its module grid.
package qrcode

import (
	"fmt"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"

	barcodegen "github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/bitutil"
)

// QuietZone is the recommended blank margin, in modules, on every side.
const QuietZone = 4

// Encoder encodes QR codes.
type Encoder struct{}

// NewEncoder creates a new QR code encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// RecoveryLevel maps an error correction letter (L, M, Q or H) to the
// library's recovery level. The empty string selects M.
func RecoveryLevel(level string) (goqrcode.RecoveryLevel, error) {
	switch strings.ToUpper(level) {
	case "L":
		return goqrcode.Low, nil
	case "", "M":
		return goqrcode.Medium, nil
	case "Q":
		return goqrcode.High, nil
	case "H":
		return goqrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: unknown error correction level: %s", barcodegen.ErrInvalidOption, level)
	}
}

// Encode encodes contents into the smallest QR symbol for the requested
// error correction level.
func (e *Encoder) Encode(contents string, opts *barcodegen.EncodeOptions) (barcodegen.Symbol, error) {
	if contents == "" {
		return nil, barcodegen.ErrEmptyPayload
	}
	var ec string
	if opts != nil {
		ec = opts.ErrorCorrection
	}
	level, err := RecoveryLevel(ec)
	if err != nil {
		return nil, err
	}
	m, err := Matrix(contents, level)
	if err != nil {
		return nil, err
	}
	return barcodegen.NewMatrixSymbol(m, QuietZone)
}

// Matrix returns the module grid of contents without any border.
func Matrix(contents string, level goqrcode.RecoveryLevel) (*bitutil.BitMatrix, error) {
	q, err := goqrcode.New(contents, level)
	if err != nil {
		return nil, fmt.Errorf("%w: qr: %v", barcodegen.ErrPayloadTooLarge, err)
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()

	// Strip whatever border the library still adds around the 17+4v grid.
	size := 17 + 4*q.VersionNumber
	if len(bitmap) < size {
		return nil, fmt.Errorf("qr: bitmap of %d rows is smaller than version %d", len(bitmap), q.VersionNumber)
	}
	off := (len(bitmap) - size) / 2

	m := bitutil.NewBitMatrix(size)
	for y := 0; y < size; y++ {
		row := bitmap[off+y]
		for x := 0; x < size; x++ {
			if row[off+x] {
				m.Set(x, y)
			}
		}
	}
	return m, nil
}
