// Package barcodegen turns text payloads into scannable barcode images.
//
// A payload is validated for the requested Symbology, encoded by the
// encoder registered for it into an abstract Symbol, drawn as SVG and
// optionally rasterized to PNG. Every result can be embedded as a data URI.
//
// Encoders live in subpackages and register themselves on import:
//
//	import (
//		"github.com/ericlevine/barcodegen"
//		_ "github.com/ericlevine/barcodegen/datamatrix"
//		_ "github.com/ericlevine/barcodegen/oned"
//		_ "github.com/ericlevine/barcodegen/qrcode"
//	)
//
//	img, err := barcodegen.Encode(barcodegen.EAN13, "590123412345", barcodegen.FormatDefault)
package barcodegen

import (
	"fmt"
	"strings"
)

// Symbology identifies a barcode symbology.
type Symbology int

const (
	QR Symbology = iota
	EAN13
	DataMatrix
	Code128
)

// Symbologies lists every symbology the engine knows about.
var Symbologies = []Symbology{QR, EAN13, DataMatrix, Code128}

// String returns the canonical lower-case name of the symbology.
func (s Symbology) String() string {
	switch s {
	case QR:
		return "qr"
	case EAN13:
		return "ean13"
	case DataMatrix:
		return "datamatrix"
	case Code128:
		return "code128"
	default:
		return fmt.Sprintf("symbology(%d)", int(s))
	}
}

// Valid reports whether s is one of the known symbologies.
func (s Symbology) Valid() bool {
	return s >= QR && s <= Code128
}

// DefaultFormat returns the output format used when none is requested.
// Code 128 defaults to raster output, the others to vector.
func (s Symbology) DefaultFormat() OutputFormat {
	if s == Code128 {
		return FormatRaster
	}
	return FormatVector
}

var symbologyNames = map[string]Symbology{
	"qr":          QR,
	"qrcode":      QR,
	"ean13":       EAN13,
	"ean-13":      EAN13,
	"datamatrix":  DataMatrix,
	"data-matrix": DataMatrix,
	"dm":          DataMatrix,
	"code128":     Code128,
	"code-128":    Code128,
	"ean128":      Code128,
	"gs1-128":     Code128,
}

// ParseSymbology parses a symbology name such as "qr" or "ean13".
func ParseSymbology(name string) (Symbology, error) {
	s, ok := symbologyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSymbology, name)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbology) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSymbology, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbology) UnmarshalText(text []byte) error {
	v, err := ParseSymbology(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// OutputFormat selects vector or raster output.
type OutputFormat int

const (
	// FormatDefault resolves to the symbology's default format.
	FormatDefault OutputFormat = iota
	// FormatVector produces SVG markup.
	FormatVector
	// FormatRaster produces a PNG bitmap.
	FormatRaster
)

// String returns "svg", "png" or "default".
func (f OutputFormat) String() string {
	switch f {
	case FormatVector:
		return "svg"
	case FormatRaster:
		return "png"
	case FormatDefault:
		return "default"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// MIMEType returns the media type of images in this format.
func (f OutputFormat) MIMEType() string {
	switch f {
	case FormatVector:
		return "image/svg+xml"
	case FormatRaster:
		return "image/png"
	default:
		return ""
	}
}

// Resolve returns f, or the symbology default when f is FormatDefault.
func (f OutputFormat) Resolve(s Symbology) OutputFormat {
	if f == FormatDefault {
		return s.DefaultFormat()
	}
	return f
}

// ParseOutputFormat parses "svg", "vector", "png", "raster" or "".
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return FormatDefault, nil
	case "svg", "vector":
		return FormatVector, nil
	case "png", "raster":
		return FormatRaster, nil
	default:
		return 0, fmt.Errorf("%w: unknown output format %q", ErrInvalidOption, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f OutputFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	v, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
