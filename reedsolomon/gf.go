// Package reedsolomon implements Reed-Solomon error correction coding over
// binary Galois fields, as used by DataMatrix ECC 200.
package reedsolomon

import "fmt"

// GenericGF represents a Galois Field for Reed-Solomon coding.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
}

// DataMatrixField256 is GF(256) with x^8 + x^5 + x^3 + x^2 + 1 and
// generator roots starting at alpha^1.
var DataMatrixField256 = NewGenericGF(0x012D, 256, 1)

// NewGenericGF creates a GF(size) using the given primitive polynomial.
// Generator polynomials have roots alpha^generatorBase and up.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x <<= 1
		if x >= size {
			x = (x ^ primitive) & (size - 1)
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = NewGenericGFPoly(gf, []int{0})
	gf.one = NewGenericGFPoly(gf, []int{1})
	return gf
}

// Zero returns the zero polynomial.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the one polynomial.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// AddOrSubtract computes a XOR b; addition and subtraction coincide in GF(2^n).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns alpha^a in this field.
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a%(gf.size-1)]
}

// Log returns the discrete logarithm of a. It panics for 0.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a. It panics for 0.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the number of field elements.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the exponent of the first generator root.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a string representation.
func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
