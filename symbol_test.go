package barcodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodegen/bitutil"
)

func TestBarSymbol(t *testing.T) {
	widths := []int{1, 1, 2, 3, 1}
	sym, err := NewBarSymbol(widths, 5, "x", []int{7})
	require.NoError(t, err)
	assert.Equal(t, 8, sym.Width())
	assert.Equal(t, 3, sym.NumBars())
	assert.Equal(t, 5, sym.QuietZone())
	assert.Equal(t, []bool{true, false, true, true, false, false, false, true}, sym.Modules())

	// The symbol owns its widths.
	widths[0] = 9
	got := sym.Widths()
	assert.Equal(t, 1, got[0])
	got[1] = 9
	assert.Equal(t, 1, sym.Widths()[1])
}

func TestBarSymbolRejects(t *testing.T) {
	_, err := NewBarSymbol(nil, 0, "", nil)
	assert.Error(t, err)
	_, err = NewBarSymbol([]int{1, 0, 1}, 0, "", nil)
	assert.Error(t, err)
	_, err = NewBarSymbol([]int{1}, -1, "", nil)
	assert.Error(t, err)
}

func TestMatrixSymbolCopiesGrid(t *testing.T) {
	m := bitutil.NewBitMatrixWithSize(3, 2)
	m.Set(0, 0)
	m.Set(2, 1)
	sym, err := NewMatrixSymbol(m, 4)
	require.NoError(t, err)

	m.Set(1, 1)
	assert.False(t, sym.Get(1, 1))
	assert.Equal(t, 3, sym.Width())
	assert.Equal(t, 2, sym.Height())
	assert.Equal(t, 2, sym.DarkModules())

	_, err = NewMatrixSymbol(nil, 0)
	assert.Error(t, err)
}

func TestSymbologyNames(t *testing.T) {
	for _, s := range Symbologies {
		got, err := ParseSymbology(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseSymbology(" GS1-128 ")
	require.NoError(t, err)
	assert.Equal(t, Code128, got)

	_, err = ParseSymbology("pdf417")
	assert.ErrorIs(t, err, ErrUnsupportedSymbology)
}

func TestDefaultFormats(t *testing.T) {
	assert.Equal(t, FormatVector, QR.DefaultFormat())
	assert.Equal(t, FormatVector, EAN13.DefaultFormat())
	assert.Equal(t, FormatVector, DataMatrix.DefaultFormat())
	assert.Equal(t, FormatRaster, Code128.DefaultFormat())
	assert.Equal(t, FormatRaster, FormatDefault.Resolve(Code128))
	assert.Equal(t, FormatVector, FormatVector.Resolve(Code128))
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{"": FormatDefault, "SVG": FormatVector, "raster": FormatRaster, "png": FormatRaster} {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseOutputFormat("gif")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestEncodeOptionsValidate(t *testing.T) {
	assert.NoError(t, (*EncodeOptions)(nil).Validate())
	assert.NoError(t, (&EncodeOptions{ErrorCorrection: "q", ForceCodeSet: "c", DataMatrixShape: "Rectangle"}).Validate())
	assert.ErrorIs(t, (&EncodeOptions{ErrorCorrection: "X"}).Validate(), ErrInvalidOption)
	assert.ErrorIs(t, (&EncodeOptions{ForceCodeSet: "D"}).Validate(), ErrInvalidOption)
	assert.ErrorIs(t, (&EncodeOptions{DataMatrixShape: "round"}).Validate(), ErrInvalidOption)
}

func TestDispatchWithoutEncoder(t *testing.T) {
	// No encoder subpackage is imported by this package's tests.
	_, err := EncodeSymbol(Symbology(99), "x", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSymbology)
}
