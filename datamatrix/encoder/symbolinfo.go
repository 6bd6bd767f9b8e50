// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"
	"strings"

	barcodegen "github.com/ericlevine/barcodegen"
)

// SymbolShapeHint controls whether the encoder picks square or rectangular symbols.
type SymbolShapeHint int

const (
	// ShapeHintForceSquare only considers square symbols.
	ShapeHintForceSquare SymbolShapeHint = iota
	// ShapeHintForceRectangle only considers rectangular symbols.
	ShapeHintForceRectangle
	// ShapeHintForceNone considers every symbol.
	ShapeHintForceNone
)

// ParseShapeHint parses "square" (or ""), "rectangle" and "any".
func ParseShapeHint(s string) (SymbolShapeHint, error) {
	switch strings.ToLower(s) {
	case "", "square":
		return ShapeHintForceSquare, nil
	case "rectangle", "rect":
		return ShapeHintForceRectangle, nil
	case "any", "none":
		return ShapeHintForceNone, nil
	default:
		return 0, fmt.Errorf("%w: datamatrix shape %q", barcodegen.ErrInvalidOption, s)
	}
}

// SymbolInfo describes a single Data Matrix ECC 200 symbol size.
type SymbolInfo struct {
	Rectangular           bool
	DataCapacity          int // data codewords, all blocks
	ErrorCodewords        int // error correction codewords, all blocks
	MatrixWidth           int // modules, finder patterns included
	MatrixHeight          int
	DataRegionSizeRows    int
	DataRegionSizeColumns int
	RSBlockData           int // data codewords per block
	RSBlockError          int // error correction codewords per block
	// NumRSBlocks2 trailing blocks hold RSBlockData2 data codewords (144x144 only).
	RSBlockData2 int
	NumRSBlocks2 int
}

// InterleavedBlockCount returns the number of interleaved RS blocks.
func (si *SymbolInfo) InterleavedBlockCount() int {
	return si.ErrorCodewords / si.RSBlockError
}

// DataLengthForBlock returns the number of data codewords in block i.
func (si *SymbolInfo) DataLengthForBlock(i int) int {
	if si.NumRSBlocks2 > 0 && i >= si.InterleavedBlockCount()-si.NumRSBlocks2 {
		return si.RSBlockData2
	}
	return si.RSBlockData
}

// TotalCodewords returns data plus error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

// HorizontalRegions returns the number of data regions across.
func (si *SymbolInfo) HorizontalRegions() int {
	return si.MatrixWidth / (si.DataRegionSizeColumns + 2)
}

// VerticalRegions returns the number of data regions down.
func (si *SymbolInfo) VerticalRegions() int {
	return si.MatrixHeight / (si.DataRegionSizeRows + 2)
}

// MappingMatrixRows returns the rows of the mapping matrix, the symbol
// without its finder and clock tracks.
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.VerticalRegions() * si.DataRegionSizeRows
}

// MappingMatrixColumns returns the columns of the mapping matrix.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.HorizontalRegions() * si.DataRegionSizeColumns
}

// String returns the symbol size, e.g. "16x48".
func (si *SymbolInfo) String() string {
	return fmt.Sprintf("%dx%d", si.MatrixHeight, si.MatrixWidth)
}

// symbols lists every ECC 200 size in order of data capacity, rectangles
// interleaved with squares (ISO/IEC 16022 Table 7).
var symbols = []SymbolInfo{
	// {Rectangular, DataCapacity, ErrorCodewords, MatrixWidth, MatrixHeight,
	//  DataRegionSizeRows, DataRegionSizeColumns, RSBlockData, RSBlockError, RSBlockData2, NumRSBlocks2}
	{false, 3, 5, 10, 10, 8, 8, 3, 5, 0, 0},
	{false, 5, 7, 12, 12, 10, 10, 5, 7, 0, 0},
	{true, 5, 7, 18, 8, 6, 16, 5, 7, 0, 0},
	{false, 8, 10, 14, 14, 12, 12, 8, 10, 0, 0},
	{true, 10, 11, 32, 8, 6, 14, 10, 11, 0, 0},
	{false, 12, 12, 16, 16, 14, 14, 12, 12, 0, 0},
	{true, 16, 14, 26, 12, 10, 24, 16, 14, 0, 0},
	{false, 18, 14, 18, 18, 16, 16, 18, 14, 0, 0},
	{false, 22, 18, 20, 20, 18, 18, 22, 18, 0, 0},
	{true, 22, 18, 36, 12, 10, 16, 22, 18, 0, 0},
	{false, 30, 20, 22, 22, 20, 20, 30, 20, 0, 0},
	{true, 32, 24, 36, 16, 14, 16, 32, 24, 0, 0},
	{false, 36, 24, 24, 24, 22, 22, 36, 24, 0, 0},
	{false, 44, 28, 26, 26, 24, 24, 44, 28, 0, 0},
	{true, 49, 28, 48, 16, 14, 22, 49, 28, 0, 0},
	{false, 62, 36, 32, 32, 14, 14, 62, 36, 0, 0},
	{false, 86, 42, 36, 36, 16, 16, 86, 42, 0, 0},
	{false, 114, 48, 40, 40, 18, 18, 114, 48, 0, 0},
	{false, 144, 56, 44, 44, 20, 20, 144, 56, 0, 0},
	{false, 174, 68, 48, 48, 22, 22, 174, 68, 0, 0},
	{false, 204, 84, 52, 52, 24, 24, 102, 42, 0, 0},
	{false, 280, 112, 64, 64, 14, 14, 140, 56, 0, 0},
	{false, 368, 144, 72, 72, 16, 16, 92, 36, 0, 0},
	{false, 456, 192, 80, 80, 18, 18, 114, 48, 0, 0},
	{false, 576, 224, 88, 88, 20, 20, 144, 56, 0, 0},
	{false, 696, 272, 96, 96, 22, 22, 174, 68, 0, 0},
	{false, 816, 336, 104, 104, 24, 24, 136, 56, 0, 0},
	{false, 1050, 408, 120, 120, 18, 18, 175, 68, 0, 0},
	{false, 1304, 496, 132, 132, 20, 20, 163, 62, 0, 0},
	{false, 1558, 620, 144, 144, 22, 22, 156, 62, 155, 2},
}

// Symbols returns a copy of the symbol table.
func Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), symbols...)
}

// Lookup finds the smallest symbol of the given shape that holds
// dataCodewords. The result is a copy of the table entry. It fails with
// ErrPayloadTooLarge when none does.
func Lookup(dataCodewords int, shapeHint SymbolShapeHint) (*SymbolInfo, error) {
	for i := range symbols {
		si := symbols[i]
		if shapeHint == ShapeHintForceSquare && si.Rectangular {
			continue
		}
		if shapeHint == ShapeHintForceRectangle && !si.Rectangular {
			continue
		}
		if si.DataCapacity >= dataCodewords {
			return &si, nil
		}
	}
	return nil, fmt.Errorf("%w: datamatrix: no symbol holds %d data codewords",
		barcodegen.ErrPayloadTooLarge, dataCodewords)
}
