// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

// Package encoder implements Data Matrix (ECC 200) symbol construction:
// ASCII data codewords, symbol size selection, Reed-Solomon blocks and
// module placement.
package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen/bitutil"
)

// Symbol is an encoded Data Matrix symbol.
type Symbol struct {
	Info      *SymbolInfo
	Codewords []byte // data followed by error correction codewords
	Matrix    *bitutil.BitMatrix
}

// Encode encodes contents into the smallest square symbol.
func Encode(contents string) (*bitutil.BitMatrix, error) {
	sym, err := EncodeWithShape(contents, ShapeHintForceSquare)
	if err != nil {
		return nil, err
	}
	return sym.Matrix, nil
}

// EncodeWithShape encodes contents into the smallest symbol allowed by shape.
func EncodeWithShape(contents string, shape SymbolShapeHint) (*Symbol, error) {
	encoded, err := EncodeHighLevel(contents)
	if err != nil {
		return nil, err
	}
	info, err := Lookup(len(encoded), shape)
	if err != nil {
		return nil, err
	}
	codewords, err := EncodeECC200(PadCodewords(encoded, info.DataCapacity), info)
	if err != nil {
		return nil, fmt.Errorf("datamatrix/encoder: %w", err)
	}
	placement := NewPlacement(codewords, info.MappingMatrixColumns(), info.MappingMatrixRows())
	placement.Place()
	return &Symbol{Info: info, Codewords: codewords, Matrix: encodeLowLevel(placement, info)}, nil
}

// encodeLowLevel builds the symbol from the mapping matrix. Every data
// region gets a solid finder on its left and bottom edges and a clock track
// on its top and right edges; data modules fill the interior.
func encodeLowLevel(placement *Placement, info *SymbolInfo) *bitutil.BitMatrix {
	matrix := bitutil.NewBitMatrixWithSize(info.MatrixWidth, info.MatrixHeight)
	drRows := info.DataRegionSizeRows
	drCols := info.DataRegionSizeColumns

	for vRegion := 0; vRegion < info.VerticalRegions(); vRegion++ {
		for hRegion := 0; hRegion < info.HorizontalRegions(); hRegion++ {
			left := hRegion * (drCols + 2)
			top := vRegion * (drRows + 2)

			matrix.SetRegion(left, top, 1, drRows+2)
			matrix.SetRegion(left, top+drRows+1, drCols+2, 1)
			for x := 0; x < drCols+2; x += 2 {
				matrix.Set(left+x, top)
			}
			for y := 1; y <= drRows; y += 2 {
				matrix.Set(left+drCols+1, top+y)
			}

			for r := 0; r < drRows; r++ {
				for c := 0; c < drCols; c++ {
					if placement.Bit(hRegion*drCols+c, vRegion*drRows+r) {
						matrix.Set(left+c+1, top+r+1)
					}
				}
			}
		}
	}
	return matrix
}
