package units

import "fmt"

// align re-expresses q's value under the ratios of to, using q's own
// dimension vector. Operator alignment bypasses the integral narrowing gate:
// for additive operators the common scale is by construction an exact
// divisor of both operand scales, and multiplicative operators follow the
// representation's own division semantics.
func align[T Numeric](q Quantity[T], to Scale) (T, error) {
	f, err := Factor(q.scale.Dim, q.scale, to)
	if err != nil {
		return 0, err
	}
	if !isIntegral[T]() {
		return T(float64(q.val) * f.Float()), nil
	}
	n, err := smul64(int64(q.val), f.num)
	if err != nil {
		return 0, err
	}
	return T(n / f.den), nil
}

// Add resolves the finest common scale of the two operands, converts both
// onto it and sums the values there. The dimensions must be equal.
func Add[T Numeric](a, b Quantity[T]) (Quantity[T], error) {
	d, err := a.scale.Dim.Add(b.scale.Dim)
	if err != nil {
		return Quantity[T]{}, err
	}
	common, err := CommonScale(d, a.scale, b.scale)
	if err != nil {
		return Quantity[T]{}, err
	}
	av, err := align(a, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	bv, err := align(b, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{val: av + bv, scale: common}, nil
}

// Sub resolves the finest common scale of the two operands, converts both
// onto it and subtracts the values there. The dimensions must be equal.
func Sub[T Numeric](a, b Quantity[T]) (Quantity[T], error) {
	d, err := a.scale.Dim.Add(b.scale.Dim)
	if err != nil {
		return Quantity[T]{}, err
	}
	common, err := CommonScale(d, a.scale, b.scale)
	if err != nil {
		return Quantity[T]{}, err
	}
	av, err := align(a, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	bv, err := align(b, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{val: av - bv, scale: common}, nil
}

// Mul multiplies two quantities. The result dimension is the component-wise
// sum of the operand dimensions; each operand is aligned onto the common
// ratios under its own dimension before the values are multiplied.
func Mul[T Numeric](a, b Quantity[T]) (Quantity[T], error) {
	d := a.scale.Dim.Mul(b.scale.Dim)
	common, err := CommonScale(d, a.scale, b.scale)
	if err != nil {
		return Quantity[T]{}, err
	}
	av, err := align(a, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	bv, err := align(b, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{val: av * bv, scale: common}, nil
}

// Div divides two quantities. The result dimension is the component-wise
// difference of the operand dimensions.
func Div[T Numeric](a, b Quantity[T]) (Quantity[T], error) {
	d := a.scale.Dim.Div(b.scale.Dim)
	common, err := CommonScale(d, a.scale, b.scale)
	if err != nil {
		return Quantity[T]{}, err
	}
	av, err := align(a, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	bv, err := align(b, common)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{val: av / bv, scale: common}, nil
}

// Over divides two quantities recorded under the exact same scale and
// returns the bare dimensionless ratio of their values, with no conversion
// step in between.
func (q Quantity[T]) Over(rhs Quantity[T]) (T, error) {
	if !q.scale.Equal(rhs.scale) {
		return 0, fmt.Errorf("over: %w", ErrScaleMismatch)
	}
	return q.val / rhs.val, nil
}

// MulScalar multiplies the value by a bare scalar, leaving scale and
// dimension untouched.
func (q Quantity[T]) MulScalar(s T) Quantity[T] {
	return Quantity[T]{val: q.val * s, scale: q.scale}
}

// DivScalar divides the value by a bare scalar, leaving scale and dimension
// untouched.
func (q Quantity[T]) DivScalar(s T) Quantity[T] {
	return Quantity[T]{val: q.val / s, scale: q.scale}
}
