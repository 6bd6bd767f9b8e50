package barcodegen

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, img *Image) image.Image {
	t.Helper()
	require.Equal(t, FormatRaster, img.Format)
	decoded, err := png.Decode(bytes.NewReader(img.Bytes()))
	require.NoError(t, err)
	return decoded
}

func isInk(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r+g+b < 3*0x8000
}

func TestRasterizeMatrixPreservesModules(t *testing.T) {
	sym := testMatrixSymbol(t, "XX X\nX  X\n XX \nX X \n")
	l := Layout{Unit: 5, QuietZone: 1}
	vector, err := RenderSVG(sym, l)
	require.NoError(t, err)

	for _, supersample := range []int{1, 4} {
		raster, err := Rasterize(vector, supersample)
		require.NoError(t, err)
		assert.Equal(t, vector.Width, raster.Width)
		assert.Equal(t, "image/png", raster.MIMEType())
		assert.Empty(t, raster.Markup())

		img := decodePNG(t, raster)
		require.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())
		for y := -1; y <= sym.Height(); y++ {
			for x := -1; x <= sym.Width(); x++ {
				want := x >= 0 && y >= 0 && x < sym.Width() && y < sym.Height() && sym.Get(x, y)
				// Sample the module centre and a pixel next to its corner.
				cx, cy := (x+1)*5+2, (y+1)*5+2
				assert.Equalf(t, want, isInk(img, cx, cy), "module %d,%d", x, y)
				assert.Equalf(t, want, isInk(img, cx-1, cy-1), "module %d,%d", x, y)
			}
		}
	}
}

func TestEffectiveSupersample(t *testing.T) {
	assert.Equal(t, 4, effectiveSupersample(300, 300, 4))
	assert.Equal(t, 1, effectiveSupersample(300, 300, 1))
	// 144x144 DataMatrix at 10px modules.
	assert.Equal(t, 2, effectiveSupersample(1460, 1460, 4))
	// Version 40 QR with a four module quiet zone.
	assert.Equal(t, 2, effectiveSupersample(1850, 1850, 4))
	assert.Equal(t, 1, effectiveSupersample(5000, 5000, 4))
	for _, side := range []int{100, 1460, 1850, 4096} {
		s := effectiveSupersample(side, side, 8)
		assert.LessOrEqual(t, side*s*side*s, maxRasterPixels, "side %d", side)
	}
}

func TestRasterizeLargeMatrixKeepsSize(t *testing.T) {
	var b strings.Builder
	for y := 0; y < 180; y++ {
		for x := 0; x < 180; x++ {
			if (x/3+y/3)%2 == 0 {
				b.WriteByte('X')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	sym := testMatrixSymbol(t, b.String())
	vector, err := RenderSVG(sym, Layout{Unit: 10, QuietZone: 4})
	require.NoError(t, err)
	require.Equal(t, 1880, vector.Width)

	raster, err := Rasterize(vector, 4)
	require.NoError(t, err)
	img := decodePNG(t, raster)
	require.Equal(t, image.Rect(0, 0, 1880, 1880), img.Bounds())
	for _, m := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}, {179, 179}, {90, 45}} {
		want := sym.Get(m[0], m[1])
		cx, cy := (m[0]+4)*10+5, (m[1]+4)*10+5
		assert.Equalf(t, want, isInk(img, cx, cy), "module %d,%d", m[0], m[1])
	}
}

func TestRasterizeBarsPreservesBars(t *testing.T) {
	widths := []int{2, 1, 1, 3, 1, 2, 4}
	sym, err := NewBarSymbol(widths, 3, "", nil)
	require.NoError(t, err)
	vector, err := RenderSVG(sym, Layout{Unit: 3, BarHeight: 20, QuietZone: 3})
	require.NoError(t, err)
	raster, err := Rasterize(vector, 4)
	require.NoError(t, err)
	img := decodePNG(t, raster)

	y := img.Bounds().Dy() / 2
	var runs []int
	ink, run := false, 0
	for x := 0; x < img.Bounds().Dx(); x++ {
		if isInk(img, x, y) != ink {
			runs = append(runs, run)
			ink, run = !ink, 0
		}
		run++
	}
	runs = append(runs, run)

	want := []int{9}
	for _, w := range widths {
		want = append(want, w*3)
	}
	want = append(want, 9)
	assert.Equal(t, want, runs)
}

func TestRasterizeRejects(t *testing.T) {
	_, err := Rasterize(nil, 4)
	assert.ErrorIs(t, err, ErrInvalidOption)

	vector, err := RenderSVG(testMatrixSymbol(t, "X\n"), Layout{Unit: 1})
	require.NoError(t, err)
	_, err = Rasterize(vector, 0)
	assert.ErrorIs(t, err, ErrInvalidOption)

	raster, err := Rasterize(vector, 1)
	require.NoError(t, err)
	_, err = Rasterize(raster, 1)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestDataURIRaster(t *testing.T) {
	vector, err := RenderSVG(testMatrixSymbol(t, "X \n X\n"), Layout{Unit: 2})
	require.NoError(t, err)
	raster, err := Rasterize(vector, 2)
	require.NoError(t, err)

	uri := raster.DataURI()
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, raster.Bytes(), data)
}
