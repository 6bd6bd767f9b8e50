// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

// Placement assigns codeword bits to the mapping matrix with the ECC 200
// diagonal algorithm (ISO/IEC 16022 Annex F). The mapping matrix is the
// symbol with its finder patterns and clock tracks removed.
type Placement struct {
	codewords []byte
	numRows   int
	numCols   int
	bits      []int8 // -1 unvisited, 0 light, 1 dark
}

// NewPlacement creates a placement for codewords in a numCols x numRows
// mapping matrix.
func NewPlacement(codewords []byte, numCols, numRows int) *Placement {
	p := &Placement{
		codewords: codewords,
		numRows:   numRows,
		numCols:   numCols,
		bits:      make([]int8, numRows*numCols),
	}
	for i := range p.bits {
		p.bits[i] = -1
	}
	return p
}

// Bit reports whether the module at (col, row) is dark.
func (p *Placement) Bit(col, row int) bool {
	return p.bits[row*p.numCols+col] == 1
}

func (p *Placement) visited(col, row int) bool {
	return p.bits[row*p.numCols+col] >= 0
}

func (p *Placement) set(col, row int, on bool) {
	var v int8
	if on {
		v = 1
	}
	p.bits[row*p.numCols+col] = v
}

// offset is a (row, col) module position of one codeword bit.
type offset struct{ row, col int }

// utahShape lists the eight bit positions of a regular codeword relative
// to its lower right module, most significant bit first.
var utahShape = [8]offset{
	{-2, -2}, {-2, -1}, {-1, -2}, {-1, -1}, {-1, 0}, {0, -2}, {0, -1}, {0, 0},
}

// Place fills the mapping matrix.
func (p *Placement) Place() {
	pos := 0
	row, col := 4, 0
	for {
		if row == p.numRows && col == 0 {
			p.corner(p.corner1(), pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner(p.corner2(), pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner(p.corner3(), pos)
			pos++
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner(p.corner4(), pos)
			pos++
		}

		// Up and to the right.
		for {
			if row < p.numRows && col >= 0 && !p.visited(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		// Down and to the left.
		for {
			if row >= 0 && col < p.numCols && !p.visited(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	// The fixed pattern in the lower right corner of some sizes.
	if !p.visited(p.numCols-1, p.numRows-1) {
		p.set(p.numCols-1, p.numRows-1, true)
		p.set(p.numCols-2, p.numRows-2, true)
	}
}

// module places bit (0 = most significant) of codeword pos at (row, col),
// wrapping positions that fall off the top or left edge.
func (p *Placement) module(row, col, pos, bit int) {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	on := false
	if pos < len(p.codewords) {
		on = p.codewords[pos]&(0x80>>uint(bit)) != 0
	}
	p.set(col, row, on)
}

func (p *Placement) utah(row, col, pos int) {
	for bit, o := range utahShape {
		p.module(row+o.row, col+o.col, pos, bit)
	}
}

func (p *Placement) corner(shape [8]offset, pos int) {
	for bit, o := range shape {
		p.module(o.row, o.col, pos, bit)
	}
}

func (p *Placement) corner1() [8]offset {
	r, c := p.numRows, p.numCols
	return [8]offset{{r - 1, 0}, {r - 1, 1}, {r - 1, 2}, {0, c - 2}, {0, c - 1}, {1, c - 1}, {2, c - 1}, {3, c - 1}}
}

func (p *Placement) corner2() [8]offset {
	r, c := p.numRows, p.numCols
	return [8]offset{{r - 3, 0}, {r - 2, 0}, {r - 1, 0}, {0, c - 4}, {0, c - 3}, {0, c - 2}, {0, c - 1}, {1, c - 1}}
}

func (p *Placement) corner3() [8]offset {
	r, c := p.numRows, p.numCols
	return [8]offset{{r - 3, 0}, {r - 2, 0}, {r - 1, 0}, {0, c - 2}, {0, c - 1}, {1, c - 1}, {2, c - 1}, {3, c - 1}}
}

func (p *Placement) corner4() [8]offset {
	r, c := p.numRows, p.numCols
	return [8]offset{{r - 1, 0}, {r - 1, c - 1}, {0, c - 3}, {0, c - 2}, {0, c - 1}, {1, c - 3}, {1, c - 2}, {1, c - 1}}
}
