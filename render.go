package barcodegen

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const (
	backgroundStyle = "fill:#ffffff;stroke:none"
	inkStyle        = "fill:#000000;stroke:none"

	// Code 128 vector output uses a fixed geometry so consumers can scale it
	// without distorting bar proportions.
	code128VectorUnit   = 2
	code128VectorHeight = 100

	// eanBarHeightUnits is the EAN-13 bar height in bar units.
	eanBarHeightUnits = 69
)

// RenderOptions controls image geometry. The zero value of a field selects
// its default.
type RenderOptions struct {
	// ModuleSize is the pixel size of one QR or DataMatrix module.
	ModuleSize int
	// EANUnit is the pixel width of one EAN-13 bar unit.
	EANUnit int
	// XDim is the pixel width of one Code 128 bar unit in raster output.
	XDim int
	// BarHeight is the Code 128 bar height in pixels in raster output.
	BarHeight int
	// Supersample is the rasterization oversampling factor.
	Supersample int
	// MinQuietZone raises every symbol's quiet zone to at least this many
	// units.
	MinQuietZone int
}

// DefaultRenderOptions returns the default geometry.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ModuleSize:  10,
		EANUnit:     2,
		XDim:        3,
		BarHeight:   120,
		Supersample: 4,
	}
}

// withDefaults fills zero fields from DefaultRenderOptions.
func (o RenderOptions) withDefaults() RenderOptions {
	d := DefaultRenderOptions()
	if o.ModuleSize == 0 {
		o.ModuleSize = d.ModuleSize
	}
	if o.EANUnit == 0 {
		o.EANUnit = d.EANUnit
	}
	if o.XDim == 0 {
		o.XDim = d.XDim
	}
	if o.BarHeight == 0 {
		o.BarHeight = d.BarHeight
	}
	if o.Supersample == 0 {
		o.Supersample = d.Supersample
	}
	return o
}

// Validate rejects negative sizes.
func (o RenderOptions) Validate() error {
	for name, v := range map[string]int{
		"module size":    o.ModuleSize,
		"ean unit":       o.EANUnit,
		"xdim":           o.XDim,
		"bar height":     o.BarHeight,
		"supersample":    o.Supersample,
		"min quiet zone": o.MinQuietZone,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s %d", ErrInvalidOption, name, v)
		}
	}
	return nil
}

// Layout is the resolved geometry for drawing one symbol.
type Layout struct {
	// Unit is the pixel size of one module or bar unit.
	Unit int
	// BarHeight is the bar height in pixels. Grids ignore it.
	BarHeight int
	// QuietZone is the margin on every side in units.
	QuietZone int
}

// NewLayout resolves the geometry for a symbol of symbology s drawn in
// format f.
func NewLayout(s Symbology, sym Symbol, f OutputFormat, opts RenderOptions) Layout {
	opts = opts.withDefaults()
	l := Layout{QuietZone: sym.QuietZone()}
	if l.QuietZone < opts.MinQuietZone {
		l.QuietZone = opts.MinQuietZone
	}
	switch s {
	case EAN13:
		l.Unit = opts.EANUnit
		l.BarHeight = eanBarHeightUnits * opts.EANUnit
	case Code128:
		if f.Resolve(s) == FormatRaster {
			l.Unit = opts.XDim
			l.BarHeight = opts.BarHeight
		} else {
			l.Unit = code128VectorUnit
			l.BarHeight = code128VectorHeight
		}
	default:
		l.Unit = opts.ModuleSize
	}
	return l
}

// RenderSVG draws sym as an SVG document with l's geometry. The quiet zone
// is added as canvas margin around the encoded content.
func RenderSVG(sym Symbol, l Layout) (*Image, error) {
	if l.Unit < 1 {
		return nil, fmt.Errorf("%w: unit %d", ErrInvalidOption, l.Unit)
	}
	margin := l.QuietZone * l.Unit
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	var width, height int
	switch s := sym.(type) {
	case *BarSymbol:
		if l.BarHeight < 1 {
			return nil, fmt.Errorf("%w: bar height %d", ErrInvalidOption, l.BarHeight)
		}
		width = s.Width()*l.Unit + 2*margin
		height = l.BarHeight + 2*margin
		begin(canvas, width, height)
		x := margin
		for i, w := range s.widths {
			if i%2 == 0 {
				canvas.Rect(x, margin, w*l.Unit, l.BarHeight, inkStyle)
			}
			x += w * l.Unit
		}
	case *MatrixSymbol:
		width = s.Width()*l.Unit + 2*margin
		height = s.Height()*l.Unit + 2*margin
		begin(canvas, width, height)
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if s.matrix.Get(x, y) {
					canvas.Rect(margin+x*l.Unit, margin+y*l.Unit, l.Unit, l.Unit, inkStyle)
				}
			}
		}
	default:
		return nil, fmt.Errorf("render: unknown symbol type %T", sym)
	}
	canvas.Gend()
	canvas.End()

	return &Image{
		Format:    FormatVector,
		Width:     width,
		Height:    height,
		Unit:      l.Unit,
		QuietZone: margin,
		data:      buf.Bytes(),
	}, nil
}

// begin opens the document, paints the background and opens the ink group.
func begin(canvas *svg.SVG, width, height int) {
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)
	canvas.Group(`shape-rendering="crispEdges"`)
}
