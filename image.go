package barcodegen

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// Image is a rendered symbol: SVG markup or PNG bytes plus the geometry used
// to size it.
type Image struct {
	// Format is FormatVector or FormatRaster.
	Format OutputFormat
	// Width and Height are the canvas size in pixels, quiet zone included.
	Width, Height int
	// Unit is the size in pixels of one module or bar unit.
	Unit int
	// QuietZone is the blank margin on every side, in pixels.
	QuietZone int

	data []byte
}

// MIMEType returns the media type of the image data.
func (img *Image) MIMEType() string { return img.Format.MIMEType() }

// Markup returns the SVG document, or "" for raster images.
func (img *Image) Markup() string {
	if img.Format != FormatVector {
		return ""
	}
	return string(img.data)
}

// Bytes returns a copy of the encoded image: SVG text or PNG bytes.
func (img *Image) Bytes() []byte { return append([]byte(nil), img.data...) }

// Len returns the size of the encoded image in bytes.
func (img *Image) Len() int { return len(img.data) }

// DataURI returns the image as an embeddable data URI. Vector images use
// percent-encoded UTF-8 markup, raster images base64.
func (img *Image) DataURI() string {
	if img.Format == FormatRaster {
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img.data)
	}
	return "data:image/svg+xml;utf8," + strings.ReplaceAll(url.QueryEscape(string(img.data)), "+", "%20")
}
