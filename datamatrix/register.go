package datamatrix

import barcodegen "github.com/ericlevine/barcodegen"

func init() {
	barcodegen.RegisterEncoder(barcodegen.DataMatrix, func() barcodegen.Encoder {
		return NewEncoder()
	})
}
