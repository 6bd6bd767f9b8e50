package oned

import barcodegen "github.com/ericlevine/barcodegen"

func init() {
	barcodegen.RegisterEncoder(barcodegen.EAN13, func() barcodegen.Encoder { return NewEAN13Encoder() })
	barcodegen.RegisterEncoder(barcodegen.Code128, func() barcodegen.Encoder { return NewCode128Encoder() })
}
