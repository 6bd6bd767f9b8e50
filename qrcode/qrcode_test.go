package qrcode

import (
	"strings"
	"testing"

	goqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barcodegen "github.com/ericlevine/barcodegen"
)

func encodeMatrix(t *testing.T, contents string, opts *barcodegen.EncodeOptions) *barcodegen.MatrixSymbol {
	t.Helper()
	sym, err := NewEncoder().Encode(contents, opts)
	require.NoError(t, err)
	m, ok := sym.(*barcodegen.MatrixSymbol)
	require.True(t, ok, "expected *MatrixSymbol, got %T", sym)
	return m
}

func TestEncodeSquareGrid(t *testing.T) {
	for _, contents := range []string{"A", "Hello, World!", "https://example.com/items/42", strings.Repeat("x", 300)} {
		t.Run(contents[:1], func(t *testing.T) {
			m := encodeMatrix(t, contents, nil)
			assert.Equal(t, m.Width(), m.Height())
			assert.Equal(t, 0, (m.Width()-17)%4, "size %d is not 17+4v", m.Width())
			assert.Equal(t, QuietZone, m.QuietZone())
		})
	}
}

func TestFinderPatternsAtCorners(t *testing.T) {
	m := encodeMatrix(t, "finder", nil)
	n := m.Width()
	for _, corner := range [][2]int{{0, 0}, {n - 7, 0}, {0, n - 7}} {
		x0, y0 := corner[0], corner[1]
		for i := 0; i < 7; i++ {
			// Outer ring of each 7x7 finder is dark.
			assert.True(t, m.Get(x0+i, y0))
			assert.True(t, m.Get(x0+i, y0+6))
			assert.True(t, m.Get(x0, y0+i))
			assert.True(t, m.Get(x0+6, y0+i))
		}
		assert.False(t, m.Get(x0+1, y0+1))
		assert.True(t, m.Get(x0+3, y0+3))
	}
}

func TestErrorCorrectionGrowsSymbol(t *testing.T) {
	contents := strings.Repeat("barcodegen ", 8)
	low := encodeMatrix(t, contents, &barcodegen.EncodeOptions{ErrorCorrection: "L"})
	high := encodeMatrix(t, contents, &barcodegen.EncodeOptions{ErrorCorrection: "H"})
	assert.Greater(t, high.Width(), low.Width())
}

func TestRecoveryLevel(t *testing.T) {
	for in, want := range map[string]goqrcode.RecoveryLevel{
		"":  goqrcode.Medium,
		"l": goqrcode.Low,
		"M": goqrcode.Medium,
		"Q": goqrcode.High,
		"H": goqrcode.Highest,
	} {
		got, err := RecoveryLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := RecoveryLevel("X")
	assert.ErrorIs(t, err, barcodegen.ErrInvalidOption)
}

func TestEncodeErrors(t *testing.T) {
	_, err := NewEncoder().Encode(strings.Repeat("x", 3000), &barcodegen.EncodeOptions{ErrorCorrection: "H"})
	assert.ErrorIs(t, err, barcodegen.ErrPayloadTooLarge)

	_, err = NewEncoder().Encode("", nil)
	assert.ErrorIs(t, err, barcodegen.ErrEmptyPayload)
}

func TestEncodeDeterministic(t *testing.T) {
	a := encodeMatrix(t, "same input", nil)
	b := encodeMatrix(t, "same input", nil)
	assert.True(t, a.Matrix().Equals(b.Matrix()))
}
