package op

// Complex is a complex scalar in wire form: a [re, im] pair. Keeping the
// pair representation (rather than complex128) makes records marshal to the
// same JSON shape they were decoded from.
type Complex [2]float64

// NewComplex creates a Complex from real and imaginary parts.
func NewComplex(re, im float64) Complex {
	return Complex{re, im}
}

// Re returns the real part.
func (c Complex) Re() float64 { return c[0] }

// Im returns the imaginary part.
func (c Complex) Im() float64 { return c[1] }

// Complex128 converts to the native Go complex type for numeric consumers.
func (c Complex) Complex128() complex128 {
	return complex(c[0], c[1])
}

// Vector is a complex column vector (diagonal of a unitary, or a state
// sub-block).
type Vector []Complex

// Matrix is a row-major complex matrix. Dimension checks against the qubit
// count are owned by the consuming engine, not this layer.
type Matrix []Vector
