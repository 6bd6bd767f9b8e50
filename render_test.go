package barcodegen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodegen/bitutil"
)

var rectPattern = regexp.MustCompile(`<rect x="(\d+)" y="(\d+)" width="(\d+)" height="(\d+)"`)

func testMatrixSymbol(t *testing.T, rows string) *MatrixSymbol {
	t.Helper()
	m, err := bitutil.ParseStringMatrix(rows, "X", " ")
	require.NoError(t, err)
	sym, err := NewMatrixSymbol(m, 1)
	require.NoError(t, err)
	return sym
}

func TestRenderSVGMatrix(t *testing.T) {
	sym := testMatrixSymbol(t, "X X\n X \nXX \n")
	img, err := RenderSVG(sym, Layout{Unit: 10, QuietZone: 1})
	require.NoError(t, err)

	assert.Equal(t, FormatVector, img.Format)
	assert.Equal(t, 50, img.Width)
	assert.Equal(t, 50, img.Height)
	assert.Equal(t, 10, img.QuietZone)

	markup := img.Markup()
	assert.Contains(t, markup, `width="50" height="50"`)
	assert.Contains(t, markup, `viewBox="0 0 50 50"`)
	assert.Contains(t, markup, `shape-rendering="crispEdges"`)

	rects := rectPattern.FindAllStringSubmatch(markup, -1)
	// Background plus one rect per dark module.
	require.Len(t, rects, 1+sym.DarkModules())
	assert.Equal(t, []string{"0", "0", "50", "50"}, rects[0][1:])
	assert.Equal(t, []string{"10", "10", "10", "10"}, rects[1][1:])
	assert.Equal(t, []string{"30", "10", "10", "10"}, rects[2][1:])
}

func TestRenderSVGBars(t *testing.T) {
	sym, err := NewBarSymbol([]int{1, 2, 3, 1, 1}, 2, "", nil)
	require.NoError(t, err)
	img, err := RenderSVG(sym, Layout{Unit: 2, BarHeight: 40, QuietZone: 2})
	require.NoError(t, err)

	assert.Equal(t, 8*2+2*4, img.Width)
	assert.Equal(t, 40+2*4, img.Height)

	rects := rectPattern.FindAllStringSubmatch(img.Markup(), -1)
	require.Len(t, rects, 1+sym.NumBars())
	assert.Equal(t, []string{"4", "4", "2", "40"}, rects[1][1:])
	assert.Equal(t, []string{"10", "4", "6", "40"}, rects[2][1:])
	assert.Equal(t, []string{"18", "4", "2", "40"}, rects[3][1:])
}

func TestRenderSVGRejectsBadLayout(t *testing.T) {
	sym := testMatrixSymbol(t, "X\n")
	_, err := RenderSVG(sym, Layout{})
	assert.ErrorIs(t, err, ErrInvalidOption)

	bars, err := NewBarSymbol([]int{1}, 0, "", nil)
	require.NoError(t, err)
	_, err = RenderSVG(bars, Layout{Unit: 1})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestNewLayout(t *testing.T) {
	bars, err := NewBarSymbol([]int{1, 1, 1}, 10, "", nil)
	require.NoError(t, err)
	grid := testMatrixSymbol(t, "X\n")
	opts := DefaultRenderOptions()

	assert.Equal(t, Layout{Unit: 2, BarHeight: 138, QuietZone: 10}, NewLayout(EAN13, bars, FormatVector, opts))
	assert.Equal(t, Layout{Unit: 2, BarHeight: 138, QuietZone: 10}, NewLayout(EAN13, bars, FormatRaster, opts))
	assert.Equal(t, Layout{Unit: 3, BarHeight: 120, QuietZone: 10}, NewLayout(Code128, bars, FormatRaster, opts))
	assert.Equal(t, Layout{Unit: 3, BarHeight: 120, QuietZone: 10}, NewLayout(Code128, bars, FormatDefault, opts))
	assert.Equal(t, Layout{Unit: 2, BarHeight: 100, QuietZone: 10}, NewLayout(Code128, bars, FormatVector, RenderOptions{XDim: 7}))
	assert.Equal(t, Layout{Unit: 10, QuietZone: 1}, NewLayout(DataMatrix, grid, FormatVector, opts))

	opts.MinQuietZone = 4
	assert.Equal(t, 4, NewLayout(QR, grid, FormatVector, opts).QuietZone)
	assert.Equal(t, 10, NewLayout(EAN13, bars, FormatVector, opts).QuietZone)
}

func TestRenderOptionsValidate(t *testing.T) {
	assert.NoError(t, RenderOptions{}.Validate())
	assert.ErrorIs(t, RenderOptions{ModuleSize: -1}.Validate(), ErrInvalidOption)
	assert.ErrorIs(t, RenderOptions{Supersample: -2}.Validate(), ErrInvalidOption)
	assert.Equal(t, DefaultRenderOptions(), RenderOptions{}.withDefaults())
}

func TestDataURIVector(t *testing.T) {
	img, err := RenderSVG(testMatrixSymbol(t, "X\n"), Layout{Unit: 1})
	require.NoError(t, err)
	uri := img.DataURI()
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;utf8,"))
	body := strings.TrimPrefix(uri, "data:image/svg+xml;utf8,")
	assert.NotContains(t, body, " ")
	assert.NotContains(t, body, "+")
	assert.NotContains(t, body, "<")
	assert.Contains(t, body, "%20")
}
