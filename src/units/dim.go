package units

import "fmt"

// Dim is the exponent vector of a quantity over the three orthogonal
// physical axes. The zero value is the dimensionless vector.
type Dim struct {
	D1, D2, D3 int
}

// Mul is the dimension of a product: exponents add component-wise.
func (d Dim) Mul(o Dim) Dim {
	return Dim{D1: d.D1 + o.D1, D2: d.D2 + o.D2, D3: d.D3 + o.D3}
}

// Div is the dimension of a quotient: exponents subtract component-wise.
func (d Dim) Div(o Dim) Dim {
	return Dim{D1: d.D1 - o.D1, D2: d.D2 - o.D2, D3: d.D3 - o.D3}
}

// Add is defined only between equal dimensions and returns that dimension.
// It is the gate additive operators pass through before any arithmetic runs.
func (d Dim) Add(o Dim) (Dim, error) {
	if !d.Equal(o) {
		return Dim{}, fmt.Errorf("add %s to %s: %w", o, d, ErrDimensionMismatch)
	}
	return d, nil
}

func (d Dim) Equal(o Dim) bool {
	return d.D1 == o.D1 && d.D2 == o.D2 && d.D3 == o.D3
}

func (d Dim) String() string {
	return fmt.Sprintf("[%d,%d,%d]", d.D1, d.D2, d.D3)
}
