// Package bitutil provides the packed module grid shared by the 2D encoders.
package bitutil

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitMatrix is a 2D grid of bits packed into 32-bit words.
// x is the column, y is the row, and the origin is the top-left module.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a square BitMatrix with the given dimension.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates a BitMatrix with the given width and height.
// It panics when either dimension is less than 1.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from rows of booleans, image[y][x].
func ParseBoolMatrix(image [][]bool) (*BitMatrix, error) {
	if len(image) == 0 || len(image[0]) == 0 {
		return nil, fmt.Errorf("bitmatrix: empty image")
	}
	width := len(image[0])
	bm := NewBitMatrixWithSize(width, len(image))
	for y, row := range image {
		if len(row) != width {
			return nil, fmt.Errorf("bitmatrix: row %d has %d columns, want %d", y, len(row), width)
		}
		for x, on := range row {
			if on {
				bm.Set(x, y)
			}
		}
	}
	return bm, nil
}

// ParseStringMatrix creates a BitMatrix from rows of text separated by
// newlines, where setStr marks a set bit and unsetStr an unset one.
func ParseStringMatrix(repr, setStr, unsetStr string) (*BitMatrix, error) {
	var rows [][]bool
	for _, line := range strings.Split(strings.ReplaceAll(repr, "\r", ""), "\n") {
		if line == "" {
			continue
		}
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setStr):
				row = append(row, true)
				line = line[len(setStr):]
			case strings.HasPrefix(line, unsetStr):
				row = append(row, false)
				line = line[len(unsetStr):]
			default:
				return nil, fmt.Errorf("bitmatrix: illegal character %q", line[0])
			}
		}
		rows = append(rows, row)
	}
	return ParseBoolMatrix(rows)
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// SetTo sets the bit at (x, y) to on.
func (bm *BitMatrix) SetTo(x, y int, on bool) {
	if on {
		bm.Set(x, y)
	} else {
		bm.Unset(x, y)
	}
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// SetRegion sets every bit of the rectangle with top-left (left, top).
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
}

// CountSet returns the number of set bits.
func (bm *BitMatrix) CountSet() int {
	n := 0
	for _, w := range bm.data {
		n += bits.OnesCount32(w)
	}
	return n
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices have the same size and bits.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
