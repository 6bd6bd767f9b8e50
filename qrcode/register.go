package qrcode

import barcodegen "github.com/ericlevine/barcodegen"

func init() {
	barcodegen.RegisterEncoder(barcodegen.QR, func() barcodegen.Encoder {
		return NewEncoder()
	})
}
