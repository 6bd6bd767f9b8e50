package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barcodegen "github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/reedsolomon"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"123456", []byte{142, 164, 186}},
		{"A", []byte{66}},
		{"A1B", []byte{66, 50, 67}},
		{"12345", []byte{142, 164, 54}},
		{"\xc3\xa9", []byte{235, 68, 235, 42}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := EncodeHighLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := EncodeHighLevel("")
	assert.ErrorIs(t, err, barcodegen.ErrEmptyPayload)
}

func TestPadCodewords(t *testing.T) {
	assert.Equal(t, []byte{66, 129, 70}, PadCodewords([]byte{66}, 3))
	assert.Equal(t, []byte{1, 2, 3}, PadCodewords([]byte{1, 2, 3}, 3))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		codewords int
		shape     SymbolShapeHint
		want      string
	}{
		{1, ShapeHintForceSquare, "10x10"},
		{3, ShapeHintForceSquare, "10x10"},
		{4, ShapeHintForceSquare, "12x12"},
		{4, ShapeHintForceRectangle, "8x18"},
		{45, ShapeHintForceNone, "16x48"},
		{45, ShapeHintForceSquare, "32x32"},
		{1558, ShapeHintForceSquare, "144x144"},
	}
	for _, tt := range tests {
		info, err := Lookup(tt.codewords, tt.shape)
		require.NoError(t, err)
		assert.Equal(t, tt.want, info.String(), "%d codewords", tt.codewords)
	}

	_, err := Lookup(1559, ShapeHintForceSquare)
	assert.ErrorIs(t, err, barcodegen.ErrPayloadTooLarge)
	_, err = Lookup(50, ShapeHintForceRectangle)
	assert.ErrorIs(t, err, barcodegen.ErrPayloadTooLarge)
}

func TestLookupIsMinimal(t *testing.T) {
	for n := 1; n <= 1558; n++ {
		info, err := Lookup(n, ShapeHintForceSquare)
		require.NoError(t, err)
		require.GreaterOrEqual(t, info.DataCapacity, n)
		for _, s := range Symbols() {
			if !s.Rectangular && s.DataCapacity >= n {
				require.GreaterOrEqual(t, s.DataCapacity, info.DataCapacity, "n=%d picked %s over %s", n, info, &s)
			}
		}
	}
}

func TestSymbolTableConsistency(t *testing.T) {
	for _, s := range Symbols() {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			blocks := s.InterleavedBlockCount()
			assert.Equal(t, s.ErrorCodewords, blocks*s.RSBlockError)
			total := 0
			for b := 0; b < blocks; b++ {
				total += s.DataLengthForBlock(b)
			}
			assert.Equal(t, s.DataCapacity, total)

			modules := s.MappingMatrixRows() * s.MappingMatrixColumns()
			extra := modules - 8*s.TotalCodewords()
			assert.Contains(t, []int{0, 4}, extra)
		})
	}
}

func TestParseShapeHint(t *testing.T) {
	for in, want := range map[string]SymbolShapeHint{
		"":          ShapeHintForceSquare,
		"Square":    ShapeHintForceSquare,
		"rectangle": ShapeHintForceRectangle,
		"any":       ShapeHintForceNone,
	} {
		got, err := ParseShapeHint(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseShapeHint("round")
	assert.ErrorIs(t, err, barcodegen.ErrInvalidOption)
}

func TestEncodeKnownCodewords(t *testing.T) {
	sym, err := EncodeWithShape("123456", ShapeHintForceSquare)
	require.NoError(t, err)
	assert.Equal(t, "10x10", sym.Info.String())
	assert.Equal(t, []byte{142, 164, 186, 114, 25, 5, 88, 102}, sym.Codewords)
}

func TestEncodeInterleavedBlocks(t *testing.T) {
	for _, n := range []int{210, 300, 1558} {
		sym, err := EncodeWithShape(strings.Repeat("A", n), ShapeHintForceSquare)
		require.NoError(t, err)
		info := sym.Info
		blocks := info.InterleavedBlockCount()
		require.Greater(t, blocks, 1, info.String())

		// Codeword k of the symbol belongs to block k mod n, error
		// correction included.
		owned := make([][]int, blocks)
		for k, c := range sym.Codewords {
			owned[k%blocks] = append(owned[k%blocks], int(c))
		}
		for b := 0; b < blocks; b++ {
			received := owned[b]
			require.Len(t, received, info.DataLengthForBlock(b)+info.RSBlockError, "%s block %d", info, b)
			assert.True(t, reedsolomon.Check(reedsolomon.DataMatrixField256, received, info.RSBlockError),
				"%s block %d", info, b)
		}
	}
}

func TestECBlockOffset(t *testing.T) {
	// 144x144: 1558 data codewords over 10 blocks, so the error correction
	// section starts with block 8.
	assert.Equal(t, 0, ecBlockOffset(8, 1558, 10))
	assert.Equal(t, 1, ecBlockOffset(9, 1558, 10))
	assert.Equal(t, 2, ecBlockOffset(0, 1558, 10))
	assert.Equal(t, 9, ecBlockOffset(7, 1558, 10))
	for b := 0; b < 8; b++ {
		assert.Equal(t, b, ecBlockOffset(b, 1304, 8))
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	info, err := Lookup(1, ShapeHintForceSquare)
	require.NoError(t, err)
	info.DataCapacity = 99
	info.MatrixWidth = 1

	again, err := Lookup(1, ShapeHintForceSquare)
	require.NoError(t, err)
	assert.Equal(t, 3, again.DataCapacity)
	assert.Equal(t, "10x10", again.String())
	assert.NotSame(t, info, again)
}

func TestFinderPatterns(t *testing.T) {
	tests := []struct {
		contents string
		shape    SymbolShapeHint
		size     string
	}{
		{"A", ShapeHintForceSquare, "10x10"},
		{strings.Repeat("B", 50), ShapeHintForceSquare, "32x32"},
		{strings.Repeat("C", 40), ShapeHintForceRectangle, "16x48"},
		{strings.Repeat("D", 180), ShapeHintForceSquare, "52x52"},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			sym, err := EncodeWithShape(tt.contents, tt.shape)
			require.NoError(t, err)
			info := sym.Info
			require.Equal(t, tt.size, info.String())
			m := sym.Matrix
			require.Equal(t, info.MatrixWidth, m.Width())
			require.Equal(t, info.MatrixHeight, m.Height())

			rw, rh := info.DataRegionSizeColumns+2, info.DataRegionSizeRows+2
			for top := 0; top < m.Height(); top += rh {
				for left := 0; left < m.Width(); left += rw {
					for y := 0; y < rh; y++ {
						assert.True(t, m.Get(left, top+y), "left finder at %d,%d", left, top+y)
						right := y%2 == 1 || y == rh-1
						assert.Equal(t, right, m.Get(left+rw-1, top+y), "right clock at %d,%d", left+rw-1, top+y)
					}
					for x := 0; x < rw; x++ {
						assert.True(t, m.Get(left+x, top+rh-1), "bottom finder at %d,%d", left+x, top+rh-1)
						assert.Equal(t, x%2 == 0, m.Get(left+x, top), "top clock at %d,%d", left+x, top)
					}
				}
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("Hello, World!")
	require.NoError(t, err)
	b, err := Encode("Hello, World!")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}
