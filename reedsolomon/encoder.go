package reedsolomon

import "sync"

// Encoder computes Reed-Solomon error correction codewords. It caches
// generator polynomials and is safe for concurrent use.
type Encoder struct {
	field *GenericGF

	mu         sync.Mutex
	generators []*GenericGFPoly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	return &Encoder{field: field, generators: []*GenericGFPoly{field.One()}}
}

// generator returns the product of (x - alpha^(base+i)) for i < degree.
func (e *Encoder) generator(degree int) *GenericGFPoly {
	e.mu.Lock()
	defer e.mu.Unlock()
	for d := len(e.generators); d <= degree; d++ {
		root := e.field.Exp(d - 1 + e.field.GeneratorBase())
		next := e.generators[d-1].MultiplyPoly(NewGenericGFPoly(e.field, []int{1, root}))
		e.generators = append(e.generators, next)
	}
	return e.generators[degree]
}

// Encode fills the last ecCount entries of toEncode with error correction
// codewords for the data entries before them.
func (e *Encoder) Encode(toEncode []int, ecCount int) {
	if ecCount <= 0 {
		panic("reedsolomon: no error correction codewords")
	}
	dataCount := len(toEncode) - ecCount
	if dataCount <= 0 {
		panic("reedsolomon: no data codewords")
	}
	info := NewGenericGFPoly(e.field, toEncode[:dataCount]).MultiplyByMonomial(ecCount, 1)
	remainder := info.Mod(e.generator(ecCount)).Coefficients()
	ec := toEncode[dataCount:]
	pad := ecCount - len(remainder)
	for i := 0; i < pad; i++ {
		ec[i] = 0
	}
	copy(ec[pad:], remainder)
}

// ECCodewords returns ecCount error correction codewords for data.
func (e *Encoder) ECCodewords(data []byte, ecCount int) []byte {
	buf := make([]int, len(data)+ecCount)
	for i, b := range data {
		buf[i] = int(b)
	}
	e.Encode(buf, ecCount)
	ec := make([]byte, ecCount)
	for i, v := range buf[len(data):] {
		ec[i] = byte(v)
	}
	return ec
}

// Syndromes evaluates the received codeword, data followed by ecCount
// error correction codewords, at each generator root. All syndromes are
// zero exactly when no error is detectable.
func Syndromes(field *GenericGF, received []int, ecCount int) []int {
	poly := NewGenericGFPoly(field, received)
	out := make([]int, ecCount)
	for i := range out {
		out[i] = poly.EvaluateAt(field.Exp(i + field.GeneratorBase()))
	}
	return out
}

// Check reports whether every syndrome of received is zero.
func Check(field *GenericGF, received []int, ecCount int) bool {
	for _, s := range Syndromes(field, received, ecCount) {
		if s != 0 {
			return false
		}
	}
	return true
}
