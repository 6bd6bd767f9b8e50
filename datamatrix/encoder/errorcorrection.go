// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen/reedsolomon"
)

// rs is shared by all symbols; its generator cache is safe for concurrent use.
var rs = reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

// EncodeECC200 appends the Reed-Solomon codewords to a full set of data
// codewords. Data codeword i belongs to block i mod n, and the round robin
// continues through the error correction codewords. When the data capacity
// is not a multiple of n (144x144) the first error correction codeword
// therefore belongs to block DataCapacity mod n, not block 0.
func EncodeECC200(codewords []byte, symbolInfo *SymbolInfo) ([]byte, error) {
	if len(codewords) != symbolInfo.DataCapacity {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d",
			symbolInfo.DataCapacity, len(codewords))
	}
	blockCount := symbolInfo.InterleavedBlockCount()
	ecPerBlock := symbolInfo.RSBlockError

	result := make([]byte, symbolInfo.TotalCodewords())
	copy(result, codewords)

	for block := 0; block < blockCount; block++ {
		data := make([]byte, 0, symbolInfo.DataLengthForBlock(block))
		for i := block; i < len(codewords); i += blockCount {
			data = append(data, codewords[i])
		}
		if len(data) != symbolInfo.DataLengthForBlock(block) {
			return nil, fmt.Errorf("datamatrix/encoder: block %d of %s has %d data codewords, want %d",
				block, symbolInfo, len(data), symbolInfo.DataLengthForBlock(block))
		}
		ec := rs.ECCodewords(data, ecPerBlock)
		start := symbolInfo.DataCapacity + ecBlockOffset(block, symbolInfo.DataCapacity, blockCount)
		for i, v := range ec {
			result[start+i*blockCount] = v
		}
	}
	return result, nil
}

// ecBlockOffset returns the position of the first error correction codeword
// of block relative to the end of the data codewords.
func ecBlockOffset(block, dataCapacity, blockCount int) int {
	return (block - dataCapacity%blockCount + blockCount) % blockCount
}
