package barcodegen

import (
	"fmt"

	"github.com/ericlevine/barcodegen/bitutil"
)

// Symbol is the abstract result of encoding a payload. It is either a
// *BarSymbol (EAN-13, Code 128) or a *MatrixSymbol (QR, DataMatrix).
// Symbols are immutable and fully determine the rendered image.
type Symbol interface {
	// QuietZone is the blank margin, in units or modules, required on
	// every side of the symbol.
	QuietZone() int

	symbol()
}

// BarSymbol is a linear symbol: an alternating run of ink and space widths
// that always starts with ink.
type BarSymbol struct {
	widths    []int
	total     int
	quietZone int
	text      string
	codes     []int
}

// NewBarSymbol builds a BarSymbol from alternating ink/space widths.
// text is the human readable interpretation and codes the symbol character
// values that produced the widths.
func NewBarSymbol(widths []int, quietZone int, text string, codes []int) (*BarSymbol, error) {
	if len(widths) == 0 {
		return nil, fmt.Errorf("bar symbol: no bars")
	}
	if quietZone < 0 {
		return nil, fmt.Errorf("bar symbol: negative quiet zone %d", quietZone)
	}
	total := 0
	for i, w := range widths {
		if w < 1 {
			return nil, fmt.Errorf("bar symbol: element %d has width %d", i, w)
		}
		total += w
	}
	return &BarSymbol{
		widths:    append([]int(nil), widths...),
		total:     total,
		quietZone: quietZone,
		text:      text,
		codes:     append([]int(nil), codes...),
	}, nil
}

func (*BarSymbol) symbol() {}

// QuietZone returns the quiet zone width in bar units.
func (s *BarSymbol) QuietZone() int { return s.quietZone }

// Widths returns a copy of the element widths, starting with ink.
func (s *BarSymbol) Widths() []int { return append([]int(nil), s.widths...) }

// Width returns the total symbol width in bar units, excluding quiet zones.
func (s *BarSymbol) Width() int { return s.total }

// NumBars returns the number of ink elements.
func (s *BarSymbol) NumBars() int { return (len(s.widths) + 1) / 2 }

// Text returns the human readable interpretation of the symbol.
func (s *BarSymbol) Text() string { return s.text }

// Codes returns a copy of the symbol character values.
func (s *BarSymbol) Codes() []int { return append([]int(nil), s.codes...) }

// Modules expands the widths into one boolean per unit, true for ink.
func (s *BarSymbol) Modules() []bool {
	out := make([]bool, 0, s.total)
	ink := true
	for _, w := range s.widths {
		for i := 0; i < w; i++ {
			out = append(out, ink)
		}
		ink = !ink
	}
	return out
}

// MatrixSymbol is a two-dimensional grid of modules.
type MatrixSymbol struct {
	matrix    *bitutil.BitMatrix
	quietZone int
}

// NewMatrixSymbol builds a MatrixSymbol from a module grid. The grid is
// copied, so later changes to m do not affect the symbol.
func NewMatrixSymbol(m *bitutil.BitMatrix, quietZone int) (*MatrixSymbol, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix symbol: nil matrix")
	}
	if quietZone < 0 {
		return nil, fmt.Errorf("matrix symbol: negative quiet zone %d", quietZone)
	}
	return &MatrixSymbol{matrix: m.Clone(), quietZone: quietZone}, nil
}

func (*MatrixSymbol) symbol() {}

// QuietZone returns the quiet zone width in modules.
func (s *MatrixSymbol) QuietZone() int { return s.quietZone }

// Width returns the number of module columns.
func (s *MatrixSymbol) Width() int { return s.matrix.Width() }

// Height returns the number of module rows.
func (s *MatrixSymbol) Height() int { return s.matrix.Height() }

// Get reports whether the module at column x, row y is dark.
func (s *MatrixSymbol) Get(x, y int) bool { return s.matrix.Get(x, y) }

// Matrix returns a copy of the module grid.
func (s *MatrixSymbol) Matrix() *bitutil.BitMatrix { return s.matrix.Clone() }

// DarkModules counts the dark modules.
func (s *MatrixSymbol) DarkModules() int { return s.matrix.CountSet() }
