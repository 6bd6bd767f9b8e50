package barcodegen_test

import (
	"testing"

	barcodegen "github.com/ericlevine/barcodegen"
)

var encodeBenchmarks = []struct {
	name      string
	symbology barcodegen.Symbology
	payload   string
}{
	{"QRCode", barcodegen.QR, "Hello, World! This is a QR code benchmark test."},
	{"DataMatrix", barcodegen.DataMatrix, "Hello DataMatrix"},
	{"Code128", barcodegen.Code128, "Hello123"},
	{"GS1-128", barcodegen.Code128, "(01)09501101530008(10)ABC123"},
	{"EAN13", barcodegen.EAN13, "5901234123457"},
}

func BenchmarkSymbol(b *testing.B) {
	g, err := barcodegen.NewGenerator()
	if err != nil {
		b.Fatal(err)
	}
	for _, tc := range encodeBenchmarks {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := g.Symbol(tc.symbology, tc.payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	g, err := barcodegen.NewGenerator()
	if err != nil {
		b.Fatal(err)
	}
	for _, format := range []barcodegen.OutputFormat{barcodegen.FormatVector, barcodegen.FormatRaster} {
		for _, tc := range encodeBenchmarks {
			b.Run(format.String()+"/"+tc.name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := g.Encode(tc.symbology, tc.payload, format); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
