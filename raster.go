package barcodegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// monochrome is the output palette: index 0 is paper, 1 is ink.
var monochrome = color.Palette{color.White, color.Black}

// maxRasterPixels bounds the supersampled RGBA canvas (64 MiB).
const maxRasterPixels = 1 << 24

// Rasterize converts a vector image to PNG. The markup is drawn at
// supersample times the target size and reduced with nearest-neighbour
// sampling, so module edges stay sharp and module counts are preserved.
// Large symbols are drawn with a smaller factor so the canvas stays within
// maxRasterPixels.
func Rasterize(vector *Image, supersample int) (*Image, error) {
	if vector == nil || vector.Format != FormatVector {
		return nil, fmt.Errorf("%w: rasterize needs a vector image", ErrInvalidOption)
	}
	if supersample < 1 {
		return nil, fmt.Errorf("%w: supersample %d", ErrInvalidOption, supersample)
	}
	bitmap, err := rasterizeBitmap(vector, supersample)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, bitmap); err != nil {
		return nil, fmt.Errorf("rasterize: encoding png: %w", err)
	}
	return &Image{
		Format:    FormatRaster,
		Width:     vector.Width,
		Height:    vector.Height,
		Unit:      vector.Unit,
		QuietZone: vector.QuietZone,
		data:      buf.Bytes(),
	}, nil
}

// rasterizeBitmap returns the two-colour bitmap of a vector image at its
// nominal pixel size.
func rasterizeBitmap(vector *Image, supersample int) (*image.Paletted, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(vector.data))
	if err != nil {
		return nil, fmt.Errorf("rasterize: parsing svg: %w", err)
	}
	supersample = effectiveSupersample(vector.Width, vector.Height, supersample)
	w, h := vector.Width*supersample, vector.Height*supersample
	icon.SetTarget(0, 0, float64(w), float64(h))

	big := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(big, big.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, big, big.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	small := imaging.Resize(big, vector.Width, vector.Height, imaging.NearestNeighbor)

	out := image.NewPaletted(image.Rect(0, 0, vector.Width, vector.Height), monochrome)
	for y := 0; y < vector.Height; y++ {
		for x := 0; x < vector.Width; x++ {
			c := small.NRGBAAt(x, y)
			if int(c.R)+int(c.G)+int(c.B) < 3*128 {
				out.SetColorIndex(x, y, 1)
			}
		}
	}
	return out, nil
}

// effectiveSupersample lowers s until a width x height image drawn at s
// times its size fits in maxRasterPixels. It never goes below 1.
func effectiveSupersample(width, height, s int) int {
	for s > 1 && width*s*height*s > maxRasterPixels {
		s--
	}
	return s
}
