package reedsolomon

// GenericGFPoly is a polynomial with coefficients in a GenericGF, ordered
// from the highest degree down. Instances are immutable.
type GenericGFPoly struct {
	field        *GenericGF
	coefficients []int
}

// NewGenericGFPoly creates a polynomial from coefficients, highest degree
// first. Leading zeros are dropped.
func NewGenericGFPoly(field *GenericGF, coefficients []int) *GenericGFPoly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	first := 0
	for first < len(coefficients)-1 && coefficients[first] == 0 {
		first++
	}
	c := make([]int, len(coefficients)-first)
	copy(c, coefficients[first:])
	return &GenericGFPoly{field: field, coefficients: c}
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *GenericGFPoly) Coefficients() []int {
	return append([]int(nil), p.coefficients...)
}

// Degree returns the degree of the polynomial.
func (p *GenericGFPoly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *GenericGFPoly) IsZero() bool {
	return p.coefficients[0] == 0
}

// GetCoefficient returns the coefficient of x^degree.
func (p *GenericGFPoly) GetCoefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates the polynomial at a using Horner's rule.
func (p *GenericGFPoly) EvaluateAt(a int) int {
	if a == 0 {
		return p.GetCoefficient(0)
	}
	result := 0
	for _, c := range p.coefficients {
		result = AddOrSubtract(p.field.Multiply(a, result), c)
	}
	return result
}

// AddOrSubtractPoly returns p + other.
func (p *GenericGFPoly) AddOrSubtractPoly(other *GenericGFPoly) *GenericGFPoly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}
	small, large := p.coefficients, other.coefficients
	if len(small) > len(large) {
		small, large = large, small
	}
	sum := make([]int, len(large))
	diff := len(large) - len(small)
	copy(sum, large[:diff])
	for i := diff; i < len(large); i++ {
		sum[i] = AddOrSubtract(small[i-diff], large[i])
	}
	return NewGenericGFPoly(p.field, sum)
}

// MultiplyPoly returns p * other.
func (p *GenericGFPoly) MultiplyPoly(other *GenericGFPoly) *GenericGFPoly {
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(a, b))
		}
	}
	return NewGenericGFPoly(p.field, product)
}

// MultiplyByMonomial returns p * coefficient * x^degree.
func (p *GenericGFPoly) MultiplyByMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewGenericGFPoly(p.field, product)
}

// Mod returns the remainder of p divided by divisor.
func (p *GenericGFPoly) Mod(divisor *GenericGFPoly) *GenericGFPoly {
	if divisor.IsZero() {
		panic("reedsolomon: divide by zero")
	}
	inverseLead := p.field.Inverse(divisor.coefficients[0])
	remainder := p
	for remainder.Degree() >= divisor.Degree() && !remainder.IsZero() {
		scale := p.field.Multiply(remainder.coefficients[0], inverseLead)
		term := divisor.MultiplyByMonomial(remainder.Degree()-divisor.Degree(), scale)
		remainder = remainder.AddOrSubtractPoly(term)
	}
	return remainder
}
